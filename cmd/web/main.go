package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"runtime"
	"strings"
	"syscall"
	"time"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"storyuniverse/internal/api"
	"storyuniverse/internal/logger"
	"storyuniverse/internal/response"
	"storyuniverse/internal/storage/drafts"
	"storyuniverse/internal/web"
)

func getEnvOrDefault(key, default_ string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return default_
}

func getBoolEnv(key string) bool {
	if val := strings.ToLower(os.Getenv(key)); val == "yes" || val == "on" || val == "true" {
		return true
	}

	return false
}

func getDurationEnv(key string, default_ time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return default_
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration in " + key + ", using " + default_.String())
		return default_
	}

	return d
}

var (
	logLevel    = getEnvOrDefault("LOG_LEVEL", "debug")
	logFormat   = strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text"))
	bindAddr    = getEnvOrDefault("BIND_ADDR", ":8080")
	backendUrl  = os.Getenv("BACKEND_URL")
	debugMode   = getBoolEnv("DEBUG_MODE")
	draftsStore = strings.ToLower(getEnvOrDefault("DRAFTS_STORE", "memory"))
	redisUrl    = os.Getenv("REDIS_URL")
	dbConnStr   = os.Getenv("DATABASE_URL")
)

const sweepInterval = 10 * time.Minute

func main() {
	_, thisFile, _, _ := runtime.Caller(0)

	lvl, lvlErr := logger.ParseLevel(logLevel)
	if err := logger.SetupSLog(lvl, logFormat, path.Dir(path.Dir(path.Dir(thisFile))), middleware.RequestIDKey); err != nil {
		slog.Error("Failed to set up logging: " + err.Error())
		os.Exit(1)
	}

	if lvlErr != nil {
		slog.Error(lvlErr.Error())
		os.Exit(1)
	}

	backendTimeout := getDurationEnv("BACKEND_TIMEOUT", 15*time.Second)
	draftTtl := getDurationEnv("DRAFT_TTL", 24*time.Hour)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := api.New(backendUrl, &http.Client{Timeout: backendTimeout}, slog.Default())
	if err != nil {
		slog.Error("Failed to configure BACKEND_URL: " + err.Error())
		os.Exit(1)
	}

	repo, closeRepo, err := openDrafts(ctx, draftTtl)
	if err != nil {
		slog.Error("Failed to open drafts store " + draftsStore + ": " + err.Error())
		os.Exit(1)
	}
	defer closeRepo()

	go drafts.Sweep(ctx, repo, draftTtl, sweepInterval, slog.Default())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logger.Requests(slog.Default()))
	r.Use(middleware.Recoverer)

	r.Mount("/", web.Handler(client, repo, &response.Responder{DebugMode: debugMode}, slog.Default()))

	srv := &http.Server{
		Addr:              bindAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down gracefully: " + err.Error())
		}
	}()

	slog.Info("Listening on " + bindAddr + ", backend " + backendUrl + ", drafts in " + draftsStore)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		slog.Error("aborting: " + err.Error())
		closeRepo()
		os.Exit(1)
	}
}

// openDrafts picks the drafts store named by DRAFTS_STORE
func openDrafts(ctx context.Context, ttl time.Duration) (drafts.Repository, func(), error) {
	switch draftsStore {
	case "memory":
		return drafts.NewMemoryRepository(), func() {}, nil

	case "redis":
		opts, err := redis.ParseURL(redisUrl)
		if err != nil {
			return nil, nil, err
		}

		rdb := redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, err
		}

		return drafts.NewRedisRepository(rdb, ttl, slog.Default()), func() { _ = rdb.Close() }, nil

	case "postgres":
		cfg, err := pgxpool.ParseConfig(dbConnStr)
		if err != nil {
			return nil, nil, err
		}

		cfg.ConnConfig.Tracer = logger.NewPGXTracer(slog.Default())

		pg, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		if err := drafts.EnsurePGXSchema(ctx, pg); err != nil {
			pg.Close()
			return nil, nil, err
		}

		return drafts.NewPGXRepository(pg, slog.Default()), pg.Close, nil

	default:
		return nil, nil, errors.New("DRAFTS_STORE must be memory, redis or postgres")
	}
}
