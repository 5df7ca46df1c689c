package app

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ogxlabs/ogxsupply/internal/docstore"
)

const probeTimeout = 5 * time.Second

func (a *Application) initJob() {
	a.sched = cron.New()

	var err error
	_, err = a.sched.AddFunc("@every 30s", a.SchedStoreProbeTask)
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedStoreProbeTask pings the document store and logs state transitions.
func (a *Application) SchedStoreProbeTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	err := a.store.Ping(ctx)
	switch {
	case err == nil:
		if !a.storeHealthy {
			zap.L().Info("document store reachable")
		}
		a.storeHealthy = true
	case errors.Is(err, docstore.ErrNotAvailable):
		// degraded since startup, stay quiet after the initial warning
	default:
		if a.storeHealthy {
			zap.L().Warn("document store unreachable", zap.Error(err))
		}
		a.storeHealthy = false
	}
}
