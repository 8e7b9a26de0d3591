package service

import (
	"context"
	"errors"

	"sport-planner/internal/apperr"
	"sport-planner/internal/model"

	"gorm.io/gorm"
)

// Store is the record store: six fixed tables plus the settings singleton,
// all accessed through one long-lived gorm handle opened at startup.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// Migrate creates any missing tables and seeds the settings singleton.
// Safe to run on every boot.
func (s *Store) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&model.EventRow{},
		&model.TrainingSessionRow{},
		&model.MealRow{},
		&model.InjuryRow{},
		&model.CompetitionRow{},
		&model.CoachMessageRow{},
		&model.UserSettingsRow{},
	)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "migrate schema", err)
	}
	return s.seedSettings(ctx)
}

func (s *Store) seedSettings(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.UserSettingsRow{}).Count(&count).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "count settings", err)
	}
	if count > 0 {
		return nil
	}
	row := model.DefaultSettings().Row()
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "seed settings", err)
	}
	return nil
}

func (s *Store) create(ctx context.Context, row any, what string) error {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Wrap(apperr.Conflict, what+" id already exists", err)
		}
		return apperr.Wrap(apperr.Storage, "insert "+what, err)
	}
	return nil
}

// update is a full replace of the listed fields keyed on id. Zero rows
// affected still reports success.
func (s *Store) update(ctx context.Context, table any, id string, fields map[string]any, what string) error {
	err := s.db.WithContext(ctx).Model(table).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		return apperr.Wrap(apperr.Storage, "update "+what, err)
	}
	return nil
}

// deleteByID removes at most one row and is a no-op for unknown ids.
func (s *Store) deleteByID(ctx context.Context, table any, id string, what string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(table).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "delete "+what, err)
	}
	return nil
}
