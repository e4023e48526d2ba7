package services

import (
	"context"

	"spark_server/apperror"
	"spark_server/models"
)

// SettingsService manages the preferences document. The age-range and
// distance values are captured but not consumed by discovery.
type SettingsService struct {
	Storage *StorageService
}

func NewSettingsService(storage *StorageService) *SettingsService {
	return &SettingsService{Storage: storage}
}

func (ss *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	return ss.Storage.Settings(ctx)
}

// Save replaces the whole settings document after validating the range.
func (ss *SettingsService) Save(ctx context.Context, settings models.Settings) error {
	if settings.AgeRange.Min >= settings.AgeRange.Max {
		return apperror.Validation("ageRange", "Minimum age must be below maximum age")
	}
	if settings.Distance <= 0 {
		return apperror.Validation("distance", "Distance must be positive")
	}
	return ss.Storage.SaveSettings(ctx, settings)
}

func (ss *SettingsService) SetLanguage(ctx context.Context, code string) (models.Settings, error) {
	settings, err := ss.Storage.Settings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	settings.Language = code
	return settings, ss.Storage.SaveSettings(ctx, settings)
}

func (ss *SettingsService) SetNotifications(ctx context.Context, enabled bool) (models.Settings, error) {
	settings, err := ss.Storage.Settings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	settings.Notifications = enabled
	return settings, ss.Storage.SaveSettings(ctx, settings)
}

// SetAgeRange applies one slider edit through models.AdjustAgeRange, which
// keeps min strictly below max.
func (ss *SettingsService) SetAgeRange(ctx context.Context, field string, value int) (models.Settings, error) {
	if field != "min" && field != "max" {
		return models.Settings{}, apperror.Validation("field", "field must be \"min\" or \"max\"")
	}
	settings, err := ss.Storage.Settings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	settings.AgeRange = models.AdjustAgeRange(settings.AgeRange, field, value)
	return settings, ss.Storage.SaveSettings(ctx, settings)
}

func (ss *SettingsService) SetDistance(ctx context.Context, km int) (models.Settings, error) {
	if km <= 0 {
		return models.Settings{}, apperror.Validation("distance", "Distance must be positive")
	}
	settings, err := ss.Storage.Settings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	settings.Distance = km
	return settings, ss.Storage.SaveSettings(ctx, settings)
}

// ClearAllData wipes the whole store: profiles, matches, chats, messages,
// ledger and settings. Cannot be undone.
func (ss *SettingsService) ClearAllData(ctx context.Context) error {
	return ss.Storage.ClearAll(ctx)
}
