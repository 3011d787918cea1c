package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/01moynul/taptosell-console/internal/ai"
	"github.com/01moynul/taptosell-console/internal/apiclient"
	"github.com/01moynul/taptosell-console/internal/audit"
	"github.com/01moynul/taptosell-console/internal/auth"
	"github.com/01moynul/taptosell-console/internal/cache"
	"github.com/01moynul/taptosell-console/internal/config"
	"github.com/01moynul/taptosell-console/internal/database"
	"github.com/01moynul/taptosell-console/internal/handlers"
	"github.com/01moynul/taptosell-console/internal/notify"
	"github.com/01moynul/taptosell-console/internal/routes"
	"github.com/joho/godotenv"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	closers := make([]func() error, 0, 3)

	// 1. --- Audit Trail (MySQL or noop) ---
	var recorder audit.Recorder = audit.NoopRecorder{}
	if cfg.DatabaseDSN != "" {
		db, err := database.OpenDB(cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("Failed to connect to audit database: %v", err)
		}
		closers = append(closers, db.Close)
		mysqlRecorder, err := audit.NewMySQLRecorder(ctx, db)
		if err != nil {
			log.Fatalf("Failed to prepare audit table: %v", err)
		}
		recorder = mysqlRecorder
		log.Println("audit: mysql")
	} else {
		log.Println("audit: noop")
	}

	// 2. --- Storefront Cache (redis or noop) ---
	cacheStore := cache.Cache(cache.NoopCache{})
	if cfg.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("redis unavailable (%v), using noop cache", err)
		} else {
			cacheStore = redisCache
			closers = append(closers, redisCache.Close)
			log.Println("cache: redis")
		}
	} else {
		log.Println("cache: noop")
	}

	// 3. --- AI Service Initialization (optional) ---
	aiService, err := ai.NewService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize AI Service: %v", err)
	}
	closers = append(closers, aiService.Close)
	if !aiService.Enabled() {
		log.Println("ai: disabled (GEMINI_API_KEY not set)")
	}

	// --- Application Setup ---
	app := handlers.New(handlers.Deps{
		Client: apiclient.New(apiclient.Options{
			BaseURL: cfg.UpstreamBaseURL,
			Token:   cfg.UpstreamToken,
			Timeout: cfg.UpstreamTimeout,
		}),
		Notices:        notify.NewHub(cfg.NotificationBuffer),
		Audit:          recorder,
		AI:             aiService,
		Tokens:         auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		SearchDebounce: cfg.SearchDebounce,
		Cache:          cacheStore,
		CacheTTL:       cfg.StorefrontCacheTTL,
	})

	// --- 4. Background Worker ---
	// Keeps the maintenance-mode flag fresh.
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			if err := app.RefreshSettings(workerCtx); err != nil && workerCtx.Err() == nil {
				log.Printf("settings refresh failed: %v", err)
			}
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	// --- Router Setup ---
	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           routes.SetupRouter(app, cfg.AllowedOrigin),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// --- Start Server ---
	go func() {
		log.Printf("Starting TapToSell console on %s (upstream %s)...", cfg.Address(), cfg.UpstreamBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	stopWorker()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Printf("close error: %v", err)
		}
	}
	log.Println("server stopped")
}
