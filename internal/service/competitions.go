package service

import (
	"context"

	"sport-planner/internal/apperr"
	"sport-planner/internal/model"
)

func (s *Store) ListCompetitions(ctx context.Context) ([]model.Competition, error) {
	var rows []model.CompetitionRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list competitions", err)
	}
	out := make([]model.Competition, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.CompetitionFromRow(r))
	}
	return out, nil
}

func (s *Store) CreateCompetition(ctx context.Context, c model.Competition) error {
	row := c.Row()
	return s.create(ctx, &row, "competition")
}

func (s *Store) UpdateCompetition(ctx context.Context, id string, c model.Competition) error {
	row := c.Row()
	return s.update(ctx, &model.CompetitionRow{}, id, map[string]any{
		"title":       row.Title,
		"sport_type":  row.SportType,
		"date":        row.Date,
		"location":    row.Location,
		"description": row.Description,
		"priority":    row.Priority,
		"goal":        row.Goal,
		"result":      row.Result,
	}, "competition")
}

func (s *Store) DeleteCompetition(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.CompetitionRow{}, id, "competition")
}
