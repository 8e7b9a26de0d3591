package service

import (
	"context"

	"sport-planner/internal/apperr"
	"sport-planner/internal/model"
)

func (s *Store) ListMeals(ctx context.Context) ([]model.Meal, error) {
	var rows []model.MealRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "list meals", err)
	}
	out := make([]model.Meal, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.MealFromRow(r))
	}
	return out, nil
}

func (s *Store) CreateMeal(ctx context.Context, m model.Meal) error {
	row := m.Row()
	return s.create(ctx, &row, "meal")
}

func (s *Store) UpdateMeal(ctx context.Context, id string, m model.Meal) error {
	row := m.Row()
	return s.update(ctx, &model.MealRow{}, id, map[string]any{
		"title":       row.Title,
		"date":        row.Date,
		"meal_type":   row.MealType,
		"description": row.Description,
		"foods":       row.Foods,
		"completed":   row.Completed,
		"feedback":    row.Feedback,
	}, "meal")
}

func (s *Store) DeleteMeal(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &model.MealRow{}, id, "meal")
}
