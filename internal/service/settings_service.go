package service

import (
	"context"
	"time"

	"inventorypro/internal/model"
	"inventorypro/internal/store"
)

// DTOs
type UpdateSettingsRequest struct {
	Notifications model.NotificationSettings `json:"notifications" binding:"required"`
	System        SystemSettingsRequest      `json:"system" binding:"required"`
}

type SystemSettingsRequest struct {
	Currency          string `json:"currency" binding:"required"`
	Timezone          string `json:"timezone" binding:"required"`
	Language          string `json:"language" binding:"required"`
	DateFormat        string `json:"date_format" binding:"required"`
	LowStockThreshold int    `json:"low_stock_threshold" binding:"min=0"`
	AutoReorder       bool   `json:"auto_reorder"`
}

type SettingsService interface {
	Get(ctx context.Context) (model.Settings, error)
	Update(ctx context.Context, userID, userName string, req UpdateSettingsRequest) (model.Settings, error)
}

type settingsService struct {
	stores *store.Stores
	audit  AuditService
}

func NewSettingsService(stores *store.Stores, audit AuditService) SettingsService {
	return &settingsService{stores: stores, audit: audit}
}

func (s *settingsService) Get(ctx context.Context) (model.Settings, error) {
	return s.stores.Settings.Get(), nil
}

// Update replaces the single settings record wholesale
func (s *settingsService) Update(ctx context.Context, userID, userName string, req UpdateSettingsRequest) (model.Settings, error) {
	settings := model.Settings{
		Notifications: req.Notifications,
		System: model.SystemSettings{
			Currency:          req.System.Currency,
			Timezone:          req.System.Timezone,
			Language:          req.System.Language,
			DateFormat:        req.System.DateFormat,
			LowStockThreshold: req.System.LowStockThreshold,
			AutoReorder:       req.System.AutoReorder,
		},
		UpdatedAt: time.Now(),
	}
	s.stores.Settings.Put(settings)

	s.audit.Record(ctx, userID, userName, model.ActionUpdateSettings, "settings", "System Settings", req)
	return settings, nil
}
