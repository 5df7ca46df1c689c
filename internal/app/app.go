package app

import (
	"context"
	"os"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ogxlabs/ogxsupply/config"
	"github.com/ogxlabs/ogxsupply/internal/docstore"
)

// Application owns the process-wide resources: configuration, the document
// store handle and the background scheduler. It is built once at startup
// and injected into the HTTP layer.
type Application struct {
	appConfig *config.AppConfig
	store     *docstore.Store
	sched     *cron.Cron

	// storeHealthy tracks the last probe outcome; only the cron goroutine
	// touches it.
	storeHealthy bool
}

var (
	_ ConfigProvider    = (*Application)(nil)
	_ StoreProvider     = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() *docstore.Store {
	return a.store
}

func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// Init sets up logging, connects the document store and starts background
// jobs. A store that cannot connect leaves the application serving in a
// degraded state; it never aborts startup.
func (a *Application) Init() {
	initLogger(a.appConfig.Logger)

	a.store = docstore.Open(docstore.Config{
		URL:  a.appConfig.Database.URL,
		Name: a.appConfig.Database.Name,
	})
	a.storeHealthy = a.store.Connected()

	a.initJob()
}

// Shutdown stops background jobs and releases the store handle.
func (a *Application) Shutdown(ctx context.Context) {
	if a.sched != nil {
		<-a.sched.Stop().Done()
	}
	if err := a.store.Close(ctx); err != nil {
		zap.L().Error("document store close failed", zap.Error(err))
	}
}

func initLogger(cfg config.LoggerConfig) {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.FileEnable {
		lumberjackLogger := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberjackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}
