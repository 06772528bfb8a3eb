package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/config"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/deps"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/ingest"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/redis"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/scheduler"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources/codechef"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources/codeforces"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources/leetcode"
	redisstore "github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/store/redis"
	sqlitestore "github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/store/sqlite"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	loop        *scheduler.IngestLoop
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Canonical contest store - fail fast if the database cannot open
	contests, err := sqlitestore.Open(cfg.DBPath, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to open contest store: %v", err)
		os.Exit(1)
	}

	// Bookmark store lives in Redis - fail fast if unavailable
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDialTimeout,
		ReadTimeout:    cfg.RedisReadTimeout,
		WriteTimeout:   cfg.RedisWriteTimeout,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	bookmarks := redisstore.NewStore(redisClient)

	// Source adapters share one HTTP client with the per-call timeout.
	httpClient := sources.NewClient(cfg.SourceTimeout)
	adapters := []sources.Adapter{
		codeforces.New(httpClient, cfg.Sources.Codeforces.APIURL),
		codechef.New(httpClient, cfg.Sources.Codechef.APIURL),
		leetcode.New(httpClient, loggerClient,
			cfg.Sources.Leetcode.PageURL, cfg.Sources.Leetcode.GraphqlURL),
	}

	// Pipeline: fan-out extraction -> reconciliation -> retention sweep
	runner := ingest.NewRunner(
		ingest.NewOrchestrator(adapters, loggerClient),
		ingest.NewReconciler(contests, loggerClient),
		ingest.NewRetention(contests, loggerClient),
		loggerClient,
		cfg.IngestRunTimeout,
	)

	loop := scheduler.NewIngestLoop(runner, loggerClient,
		cfg.IngestStartupDelay, cfg.IngestInterval)

	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		TimeNow:   time.Now,
		Contests:  contests,
		Bookmarks: bookmarks,
		Runner:    runner,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		loop:        loop,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting contracker v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("contracker %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the ingestion scheduler (first run after the startup delay)
	a.loop.Start(ctx)
	a.logger.Info("ingestion scheduler started",
		logger.Duration("startup_delay", a.cfg.IngestStartupDelay),
		logger.Duration("interval", a.cfg.IngestInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.loop.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ contracker stopped cleanly")
	return nil
}
