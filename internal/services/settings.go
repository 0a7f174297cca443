package services

import (
	"context"
	"errors"
	"strings"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ports"
)

// SettingsService reads and updates the webhook configuration kept in the state store
type SettingsService struct {
	keys  config.StorageKeys
	store ports.StateStore
}

// Verify interface compliance at compile time
var _ ports.EndpointSource = (*SettingsService)(nil)

// NewSettingsService creates a new SettingsService
func NewSettingsService(store ports.StateStore, keys config.StorageKeys) *SettingsService {
	return &SettingsService{
		keys:  keys,
		store: store,
	}
}

// WebhookURL returns the configured webhook, or the placeholder when none is set
func (s *SettingsService) WebhookURL(ctx context.Context) (string, error) {
	url, err := s.loadString(ctx, s.keys.WebhookURL)
	if err != nil {
		return "", err
	}
	if url == "" {
		return config.PlaceholderWebhookURL, nil
	}
	return url, nil
}

// ValidateWebhookURL checks url the same way SetWebhookURL does, without storing it
func ValidateWebhookURL(url string) error {
	return validateStruct(webhookSettings{WebhookURL: strings.TrimSpace(url)})
}

// SetWebhookURL validates and stores url. An empty url switches back to mock mode.
func (s *SettingsService) SetWebhookURL(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if err := ValidateWebhookURL(url); err != nil {
		logging.Logger.Warn("Rejected webhook URL", "error", err)
		return err
	}

	if err := saveDocument(ctx, s.store, s.keys.WebhookURL, url); err != nil {
		logging.Logger.Error("Failed to save webhook URL", "error", err)
		return err
	}

	logging.Logger.Info("Webhook URL updated", "mock_mode", config.IsPlaceholderWebhook(url))
	return nil
}

// DirectAPIKey returns the optional API key sent to the webhook ("" when unset)
func (s *SettingsService) DirectAPIKey(ctx context.Context) (string, error) {
	return s.loadString(ctx, s.keys.DirectAPIKey)
}

// SetDirectAPIKey stores key. An empty key removes it.
func (s *SettingsService) SetDirectAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if err := saveDocument(ctx, s.store, s.keys.DirectAPIKey, key); err != nil {
		logging.Logger.Error("Failed to save API key", "error", err)
		return err
	}

	logging.Logger.Info("API key updated", "configured", key != "")
	return nil
}

// IsMockMode reports whether repurposes are served by the offline mock generator
func (s *SettingsService) IsMockMode(ctx context.Context) (bool, error) {
	url, err := s.WebhookURL(ctx)
	if err != nil {
		return false, err
	}
	return config.IsPlaceholderWebhook(url), nil
}

func (s *SettingsService) loadString(ctx context.Context, key string) (string, error) {
	var value string
	if _, err := loadDocument(ctx, s.store, key, &value); err != nil {
		if errors.Is(err, errCorruptDocument) {
			logging.Logger.Warn("Ignoring unreadable setting", "key", key, "error", err)
			return "", nil
		}
		return "", err
	}
	return value, nil
}
