package service

import (
	"context"

	"sport-planner/internal/apperr"
	"sport-planner/internal/model"
)

func (s *Store) ListTrainingSessions(ctx context.Context) ([]model.TrainingSession, error) {
	var rows []model.TrainingSessionRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list training sessions", err)
	}
	out := make([]model.TrainingSession, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.TrainingSessionFromRow(r))
	}
	return out, nil
}

func (s *Store) CreateTrainingSession(ctx context.Context, t model.TrainingSession) error {
	row := t.Row()
	return s.create(ctx, &row, "training session")
}

func (s *Store) UpdateTrainingSession(ctx context.Context, id string, t model.TrainingSession) error {
	row := t.Row()
	return s.update(ctx, &model.TrainingSessionRow{}, id, map[string]any{
		"title":       row.Title,
		"sport_type":  row.SportType,
		"date":        row.Date,
		"duration":    row.Duration,
		"description": row.Description,
		"intensity":   row.Intensity,
		"completed":   row.Completed,
		"feedback":    row.Feedback,
		"metrics":     row.Metrics,
	}, "training session")
}

func (s *Store) DeleteTrainingSession(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.TrainingSessionRow{}, id, "training session")
}
