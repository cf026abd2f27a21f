// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/balticclima/siteapi/internal/auth"
	"github.com/balticclima/siteapi/internal/config"
	"github.com/balticclima/siteapi/internal/handler/api"
	"github.com/balticclima/siteapi/internal/middleware"
	"github.com/balticclima/siteapi/internal/scheduler"
	"github.com/balticclima/siteapi/internal/service"
	"github.com/balticclima/siteapi/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// maxRequestBody caps any request body. Uploads are bounded tighter by the
// upload service itself.
const maxRequestBody = 50 << 20

const (
	loginRatePerSecond = 1
	loginRateBurst     = 5
)

// registerCollection registers the public list route and the admin CRUD
// routes for one collection resource.
func registerCollection(public, admin chi.Router, base string, c api.Collection) {
	public.Get(base, c.List)
	admin.Get(base, c.List)
	admin.Post(base, c.Create)
	admin.Put(base+"/{id}", c.Update)
	admin.Delete(base+"/{id}", c.Delete)
}

// registerSingleton registers the public read plus the admin read/write
// routes for one single-row resource. The admin console reads through the
// gated route so it can edit without touching the public surface.
func registerSingleton(public, admin chi.Router, base string, s api.Singleton) {
	public.Get(base, s.Get)
	admin.Get(base, s.Get)
	admin.Put(base, s.Put)
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "siteapi - Baltic Clima site content API\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEAPI_TOKEN_SECRET      Token signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEAPI_ADMIN_USER        Admin username (required)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEAPI_ADMIN_PASSWORD    Admin password (required)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEAPI_DB_PATH           SQLite database path (default: ./data/site.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEAPI_SERVER_PORT       Server port (default: 3000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEAPI_UPLOADS_DIR       Upload storage directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEAPI_BASE_URL          Public base URL for upload links\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEAPI_ALLOWED_ORIGINS   Comma-separated CORS allow-list\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEAPI_TOKEN_TTL         Token lifetime, e.g. 12h (default: no expiry)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITEAPI_ENV               Environment: development|production (default: development)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		_, _ = fmt.Printf("siteapi %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	creds, err := auth.NewStaticCredentials(cfg.AdminUser, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("preparing admin credentials: %w", err)
	}
	tokens := auth.NewTokenCodec(cfg.TokenSecret, cfg.TokenTTL)

	uploads, err := service.NewUploadService(cfg.UploadsDir, cfg.PublicBaseURL())
	if err != nil {
		return fmt.Errorf("preparing uploads directory: %w", err)
	}

	h := api.NewHandler(db, creds, tokens, uploads)

	sched, err := scheduler.New(service.NewSweeper(store.New(db), cfg.UploadsDir))
	if err != nil {
		return fmt.Errorf("configuring scheduler: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.BodyLimit(maxRequestBody))

	// Admin routes sit behind the token gate; each resource keeps its public
	// read route on the root router.
	admin := chi.NewRouter()
	admin.Use(middleware.RequireToken(tokens))

	registerCollection(r, admin, "/products", h.Products)
	registerCollection(r, admin, "/services", h.Services)
	registerSingleton(r, admin, "/about", h.About)
	registerSingleton(r, admin, "/contact", h.Contact)
	registerSingleton(r, admin, "/hero", h.Hero)
	registerSingleton(r, admin, "/footer", h.Footer)
	admin.Post("/upload", h.Upload)
	r.Mount("/admin", admin)

	r.With(middleware.LoginRateLimit(loginRatePerSecond, loginRateBurst)).
		Post("/login", h.Login)
	r.Post("/contact/submit", h.ContactSubmit)

	// Stored uploads are served as plain static files.
	uploadsFS := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
		uploadsFS.ServeHTTP(w, req)
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Longer to allow for large uploads and slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
