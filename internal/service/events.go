package service

import (
	"context"

	"sport-planner/internal/apperr"
	"sport-planner/internal/model"
)

func (s *Store) ListEvents(ctx context.Context) ([]model.Event, error) {
	var rows []model.EventRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list events", err)
	}
	out := make([]model.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.EventFromRow(r))
	}
	return out, nil
}

func (s *Store) CreateEvent(ctx context.Context, e model.Event) error {
	row := e.Row()
	return s.create(ctx, &row, "event")
}

func (s *Store) UpdateEvent(ctx context.Context, id string, e model.Event) error {
	row := e.Row()
	return s.update(ctx, &model.EventRow{}, id, map[string]any{
		"title":       row.Title,
		"start":       row.Start,
		"end":         row.End,
		"type":        row.Type,
		"description": row.Description,
		"completed":   row.Completed,
	}, "event")
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.EventRow{}, id, "event")
}
