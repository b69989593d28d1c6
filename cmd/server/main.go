package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/me/shopadmin/internal/api"
	"github.com/me/shopadmin/internal/assets"
	"github.com/me/shopadmin/internal/config"
	"github.com/me/shopadmin/internal/dashboard"
	"github.com/me/shopadmin/internal/logging"
	"github.com/me/shopadmin/internal/store"
)

func main() {
	cfg := config.DefaultServerConfig()

	configFile := flag.String("config", "", "Path to YAML config file")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	flag.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "Platform API base URL")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Session database path (default ~/.shopadmin/sessions.db)")
	flag.BoolVar(&cfg.Secure, "secure", cfg.Secure, "Set the Secure flag on session cookies")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")

	flag.Parse()

	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.ApplyEnv()
	// Re-parse so explicit flags win over the config file and environment.
	flag.Parse()

	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	// Resolve session database path.
	dbPath := cfg.DBPath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot determine home directory: %v\n", err)
			os.Exit(1)
		}
		dir := filepath.Join(home, ".shopadmin")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", dir, err)
			os.Exit(1)
		}
		dbPath = filepath.Join(dir, "sessions.db")
	}

	// Open session store and run migrations.
	st, err := store.NewSQLiteStore(dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session database ready", "path", dbPath)

	client := api.NewClient(cfg.APIBaseURL, logger)
	ui := dashboard.New(client, st, logger, dashboard.Config{Secure: cfg.Secure})

	// S3-backed image uploads are optional; without a bucket the toy form
	// falls back to pasting an image URL.
	if cfg.Assets.Bucket != "" {
		uploader, err := assets.NewUploader(context.Background(), assets.Config{
			Bucket:        cfg.Assets.Bucket,
			Region:        cfg.Assets.Region,
			Endpoint:      cfg.Assets.Endpoint,
			PublicBaseURL: cfg.Assets.PublicBaseURL,
		}, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "configure uploads: %v\n", err)
			os.Exit(1)
		}
		ui.WithUploader(uploader)
		logger.Info("image uploads enabled", "bucket", cfg.Assets.Bucket)
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	ui.RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sweep expired sessions hourly.
	go func() {
		sessions := dashboard.NewSessionManager(st)
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := sessions.CleanupExpiredSessions(ctx); err != nil {
					logger.Error("session cleanup failed", "error", err)
				} else if n > 0 {
					logger.Info("expired sessions removed", "count", n)
				}
			}
		}
	}()

	go func() {
		logger.Info("dashboard starting", "addr", cfg.Addr, "api", cfg.APIBaseURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
