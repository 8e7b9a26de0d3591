package service

import (
	"context"

	"sport-planner/internal/apperr"
	"sport-planner/internal/model"
)

func (s *Store) ListInjuries(ctx context.Context) ([]model.Injury, error) {
	var rows []model.InjuryRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list injuries", err)
	}
	out := make([]model.Injury, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.InjuryFromRow(r))
	}
	return out, nil
}

func (s *Store) CreateInjury(ctx context.Context, i model.Injury) error {
	row := i.Row()
	return s.create(ctx, &row, "injury")
}

func (s *Store) UpdateInjury(ctx context.Context, id string, i model.Injury) error {
	row := i.Row()
	return s.update(ctx, &model.InjuryRow{}, id, map[string]any{
		"title":       row.Title,
		"body_part":   row.BodyPart,
		"severity":    row.Severity,
		"start_date":  row.StartDate,
		"end_date":    row.EndDate,
		"description": row.Description,
		"status":      row.Status,
		"notes":       row.Notes,
	}, "injury")
}

func (s *Store) DeleteInjury(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.InjuryRow{}, id, "injury")
}
