package model

import "time"

// NotificationSettings holds per-channel and per-event notification toggles
type NotificationSettings struct {
	Email        bool `json:"email"`
	SMS          bool `json:"sms"`
	LowStock     bool `json:"low_stock"`
	OrderUpdates bool `json:"order_updates"`
	SystemAlerts bool `json:"system_alerts"`
}

// SystemSettings holds the dashboard-wide defaults
type SystemSettings struct {
	Currency          string `json:"currency"`
	Timezone          string `json:"timezone"`
	Language          string `json:"language"`
	DateFormat        string `json:"date_format"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	AutoReorder       bool   `json:"auto_reorder"`
}

// Settings is the single settings record; there is exactly one per deployment
type Settings struct {
	Notifications NotificationSettings `json:"notifications"`
	System        SystemSettings       `json:"system"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// DefaultSettings returns the out-of-the-box configuration
func DefaultSettings() Settings {
	return Settings{
		Notifications: NotificationSettings{
			Email:        true,
			SMS:          false,
			LowStock:     true,
			OrderUpdates: true,
			SystemAlerts: true,
		},
		System: SystemSettings{
			Currency:          "USD",
			Timezone:          "UTC",
			Language:          "en",
			DateFormat:        "MM/DD/YYYY",
			LowStockThreshold: 10,
			AutoReorder:       false,
		},
	}
}
