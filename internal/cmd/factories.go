package cmd

import (
	"time"

	adapterstorage "github.com/contentply/contentply/internal/adapters/storage"
	adapterwebhook "github.com/contentply/contentply/internal/adapters/webhook"
	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ports"
	"github.com/contentply/contentply/internal/services"
	"github.com/contentply/contentply/internal/ui"
)

// ContainerOptions configures NewContainer
type ContainerOptions struct {
	DBPath         string
	MockDelay      time.Duration
	MonthlyLimit   int
	RequestTimeout time.Duration
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	ExportService    *services.ExportService
	HistoryService   *services.HistoryService
	QuotaService     *services.QuotaService
	RepurposeService *services.RepurposeService
	SettingsService  *services.SettingsService

	// Internal - for cleanup only
	store ports.StateStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	store, err := adapterstorage.NewSQLiteStore(opts.DBPath)
	if err != nil {
		return nil, err
	}

	keys := config.DefaultStorageKeys()

	quotaService := services.NewQuotaService(store, keys, opts.MonthlyLimit)
	historyService := services.NewHistoryService(store, keys)
	settingsService := services.NewSettingsService(store, keys)

	client := adapterwebhook.NewClient(
		settingsService,
		quotaService,
		adapterwebhook.NewMockGenerator(opts.MockDelay),
		opts.RequestTimeout,
	)
	repurposeService := services.NewRepurposeService(quotaService, historyService, client)

	logging.Logger.Debug("Container initialized",
		"db_path", opts.DBPath,
		"monthly_limit", opts.MonthlyLimit,
		"mock_delay", opts.MockDelay.String(),
		"request_timeout", opts.RequestTimeout.String())

	return &Container{
		ExportService:    services.NewExportService(),
		HistoryService:   historyService,
		QuotaService:     quotaService,
		RepurposeService: repurposeService,
		SettingsService:  settingsService,
		store:            store,
	}, nil
}

// UIServices returns the services driven by the TUI
func (c *Container) UIServices() ui.Services {
	return ui.Services{
		Export:    c.ExportService,
		History:   c.HistoryService,
		Quota:     c.QuotaService,
		Repurpose: c.RepurposeService,
		Settings:  c.SettingsService,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
