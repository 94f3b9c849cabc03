package gateway

import (
	"context"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vknowable/namada-ping-middleware/app/gateway/monitor"
	"github.com/vknowable/namada-ping-middleware/app/gateway/types"
	"github.com/vknowable/namada-ping-middleware/pkg/governance"
	"github.com/vknowable/namada-ping-middleware/pkg/logging"
	"github.com/vknowable/namada-ping-middleware/pkg/redis"
	"github.com/vknowable/namada-ping-middleware/pkg/retry"
	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
	"github.com/vknowable/namada-ping-middleware/pkg/utils"
)

// Initialize initializes the application.
func Initialize(ctx context.Context) *types.App {
	// A missing .env is fine: the environment alone is enough.
	_ = godotenv.Load()

	logger, err := logging.New()
	if err != nil {
		// nothing else to do here, we'll just log to stderr'
		panic(err)
	}

	client := rpc.NewHTTPWithOpts(rpc.Opts{
		Endpoints:       utils.EnvList("RPC_URLS", []string{"http://localhost:26657"}),
		Timeout:         utils.EnvDuration("RPC_TIMEOUT", 0),
		RPS:             utils.EnvInt("RPC_RPS", 0),
		Burst:           utils.EnvInt("RPC_BURST", 0),
		BreakerFailures: utils.EnvInt("RPC_BREAKER_FAILURES", 0),
		BreakerCooldown: utils.EnvDuration("RPC_BREAKER_COOLDOWN", 0),
	})
	logger.Info("Chain RPC configured", zap.Strings("endpoints", client.Endpoints()))

	// Wait for the chain before serving; a gateway without a chain answers nothing.
	probeErr := retry.WithBackoff(ctx, retry.StartupConfig(), logger, "chain status", func(ctx context.Context) error {
		_, err := client.Status(ctx)
		return err
	})
	if probeErr != nil {
		logger.Warn("Chain RPC not reachable at startup, serving anyway", zap.Error(probeErr))
	}

	parallelism := governance.Parallelism(utils.EnvInt("GOV_FETCH_CONCURRENCY", 0))
	pool := governance.NewPool(parallelism)
	logger.Info("Governance fetch pool ready", zap.Int("workers", parallelism))

	app := &types.App{
		RPC:    client,
		Pool:   pool,
		Gov:    governance.NewService(client, pool, logger),
		Logger: logger,
	}

	// Initialize Redis client for response caching (optional)
	if utils.EnvBool("REDIS_ENABLED", false) {
		redisClient, redisErr := redis.NewClient(ctx, logger)
		if redisErr != nil {
			logger.Warn("Failed to initialize Redis client - response caching will be disabled",
				zap.Error(redisErr))
		} else {
			app.Cache = redisClient
			logger.Info("Redis client initialized for response caching")
		}
	} else {
		logger.Info("Redis disabled - responses will not be cached")
	}

	app.Monitor = monitor.New(client, logger, utils.Env("HEALTH_CRON", monitor.DefaultSpec))
	if err := app.Monitor.Setup(ctx); err != nil {
		logger.Fatal("Unable to schedule health monitor", zap.Error(err))
	}

	return app
}
