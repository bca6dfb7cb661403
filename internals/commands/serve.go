package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	goredis "github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"kiadmin_backend/internals/configs"
	database "kiadmin_backend/internals/databases"
	docScheduler "kiadmin_backend/internals/features/documents/scheduler"
	authScheduler "kiadmin_backend/internals/features/users/auth/scheduler"
	helper "kiadmin_backend/internals/helpers"
	"kiadmin_backend/internals/helpers/livequery"
	"kiadmin_backend/internals/helpers/logger"
	"kiadmin_backend/internals/helpers/storage"
	middlewares "kiadmin_backend/internals/middlewares"
	reqLogger "kiadmin_backend/internals/middlewares/logger"
	routes "kiadmin_backend/internals/route"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Jalankan HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// NewApp membuat fiber.App dengan middleware standar.
func NewApp(cfg configs.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FiberErrorHandler,
		BodyLimit:             int(cfg.MaxUploadBytes) + 1<<20,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(reqLogger.RequestIDMiddleware())
	app.Use(reqLogger.LoggerMiddleware(cfg.Timezone))
	app.Use(middlewares.MetricsMiddleware())
	app.Use(middlewares.CorsMiddleware(cfg.CorsOrigins))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelDefault,
		// stream SSE tidak boleh di-buffer kompresi
		Next: func(c *fiber.Ctx) bool { return c.Get(fiber.HeaderAccept) == "text/event-stream" },
	}))
	app.Use(etag.New())
	app.Use(middlewares.GlobalRateLimiter())
	return app
}

func openRedis(ctx context.Context, cfg configs.Config) *goredis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.L().Warn("⚠️ Redis tidak tersedia, pakai cache & bus lokal", "err", err)
		_ = rdb.Close()
		return nil
	}
	logger.L().Info("✅ Redis connected", "addr", cfg.RedisAddr)
	return rdb
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := context.WithCancel(parent)
	defer stop()
	log := logger.L()

	// 🔌 DB connect + pool + warm-up
	cfg, db, err := openDB()
	if err != nil {
		return err
	}
	defer database.Close(db)
	database.WarmUpQueries(db)

	st, err := storage.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	log.Info("✅ Storage siap", "driver", st.Name())

	rdb := openRedis(ctx, cfg)
	var bus livequery.Bus = livequery.NewMemoryBus()
	if rdb != nil {
		defer rdb.Close()
		if rb, err := livequery.NewRedisBus(rdb, cfg.RedisChannel, log); err == nil {
			bus = rb
		} else {
			log.Warn("⚠️ Redis pub/sub gagal, pakai bus lokal", "err", err)
		}
	}
	defer bus.Close()

	svc := routes.NewServices(cfg, routes.Infra{DB: db, Storage: st, Redis: rdb, Bus: bus})
	svc.Dashboard.StartLive(ctx, bus)

	// ⏱ scheduler setelah DB siap
	var crons []*cron.Cron
	if c, err := authScheduler.StartBlacklistCleanupScheduler(db, cfg.TokenBlacklistTTLDays, log); err != nil {
		log.Error("scheduler blacklist gagal", "err", err)
	} else {
		crons = append(crons, c)
	}
	if c, err := docScheduler.StartOrphanReaper(svc.Documents, cfg.DocumentOrphanTTL, log); err != nil {
		log.Error("scheduler reaper gagal", "err", err)
	} else {
		crons = append(crons, c)
	}
	defer func() {
		for _, c := range crons {
			<-c.Stop().Done()
		}
	}()

	app := NewApp(cfg)
	routes.BaseRoutes(app, db, st, cfg.StoragePublicBase)
	routes.SetupRoutes(app, db, cfg, svc)

	errCh := make(chan error, 1)
	go func() {
		log.Info("✅ Listening", "port", cfg.Port)
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("🛑 Shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
