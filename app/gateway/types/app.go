package types

import (
	"context"
	"net/http"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/vknowable/namada-ping-middleware/app/gateway/monitor"
	"github.com/vknowable/namada-ping-middleware/pkg/governance"
	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

// Cache is the optional response cache. A nil Cache disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration)
	Health(ctx context.Context) error
	Close() error
}

type App struct {
	// RPC is the chain query client shared by every handler.
	RPC rpc.Client
	// Pool bounds concurrent chain queries across requests.
	Pool pond.Pool
	// Gov answers the gov module queries.
	Gov *governance.Service
	// Cache is nil unless REDIS_ENABLED is set and Redis was reachable.
	Cache Cache
	// Monitor probes the chain on a schedule for /health.
	Monitor *monitor.Monitor
	// Zap Logger
	Logger *zap.Logger
	// Server represents the HTTP server instance used to handle incoming client requests and manage HTTP routes.
	Server *http.Server
}

// Start starts the application and blocks until ctx is done.
func (a *App) Start(ctx context.Context) {
	if a.Monitor != nil {
		a.Monitor.Start(ctx)
	}

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.Error("Server stopped unexpectedly", zap.Error(err))
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = a.Server.Shutdown(shutdownCtx)

	if a.Monitor != nil {
		a.Monitor.Stop()
	}
	if a.Pool != nil {
		a.Pool.StopAndWait()
	}
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			a.Logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}

	time.Sleep(200 * time.Millisecond)
	a.Logger.Info("さようなら!")
	_ = a.Logger.Sync()
}
