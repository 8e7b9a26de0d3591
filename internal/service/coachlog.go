package service

import (
	"context"

	"sport-planner/internal/apperr"
	"sport-planner/internal/model"
)

// AppendCoachMessage records one transcript entry. Ids here are
// server-generated (the transcript has no client-facing create call).
func (s *Store) AppendCoachMessage(ctx context.Context, m model.CoachMessage) error {
	row := m.Row()
	return s.create(ctx, &row, "coach message")
}

func (s *Store) ListCoachMessages(ctx context.Context, coachType string) ([]model.CoachMessage, error) {
	var rows []model.CoachMessageRow
	// Dates are second-precision text, so ties inside one exchange are
	// broken by the nanosecond-derived id.
	err := s.db.WithContext(ctx).
		Where("coach_type = ?", coachType).
		Order("date").Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list coach messages", err)
	}
	out := make([]model.CoachMessage, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.CoachMessageFromRow(r))
	}
	return out, nil
}
