package app

import (
	"github.com/robfig/cron/v3"

	"github.com/ogxlabs/ogxsupply/config"
	"github.com/ogxlabs/ogxsupply/internal/docstore"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides document store access
type StoreProvider interface {
	Store() *docstore.Store
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}
