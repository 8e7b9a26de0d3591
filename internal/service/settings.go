package service

import (
	"context"
	"errors"

	"sport-planner/internal/apperr"
	"sport-planner/internal/model"

	"gorm.io/gorm"
)

func (s *Store) GetSettings(ctx context.Context) (model.UserSettings, error) {
	var row model.UserSettingsRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", model.SettingsRowID()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.UserSettings{}, apperr.New(apperr.NotFound, "settings not found")
	}
	if err != nil {
		return model.UserSettings{}, apperr.Wrap(apperr.Storage, "get settings", err)
	}
	return model.UserSettingsFromRow(row), nil
}

// UpdateSettings replaces every settings field; the singleton row is never
// deleted or re-keyed.
func (s *Store) UpdateSettings(ctx context.Context, st model.UserSettings) error {
	row := st.Row()
	err := s.db.WithContext(ctx).Model(&model.UserSettingsRow{}).
		Where("id = ?", model.SettingsRowID()).
		Updates(map[string]any{
			"name":                 row.Name,
			"birth_year":           row.BirthYear,
			"weight":               row.Weight,
			"height":               row.Height,
			"fitness_level":        row.FitnessLevel,
			"primary_sport":        row.PrimarySport,
			"secondary_sports":     row.SecondarySports,
			"dietary_restrictions": row.DietaryRestrictions,
			"notifications":        row.Notifications,
			"units":                row.Units,
		}).Error
	if err != nil {
		return apperr.Wrap(apperr.Storage, "update settings", err)
	}
	return nil
}
