package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocabquiz/internal/api"
	"vocabquiz/internal/config"
	"vocabquiz/internal/handler"
	"vocabquiz/internal/middleware"
	"vocabquiz/internal/repository"
	"vocabquiz/internal/repository/document"
	"vocabquiz/internal/repository/postgres"
	"vocabquiz/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const loadTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting vocabulary quiz",
		zap.String("env", cfg.Env),
		zap.String("words_source", cfg.Words.Source),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the word data once; a failure leaves the quiz unavailable
	quiz, closeSource := loadQuiz(ctx, cfg, logger)
	defer closeSource()

	store := service.NewSessionStore(logger)
	go runCleanupJob(ctx, store, cfg.Sessions, logger)

	// HTTP API
	var srv *http.Server
	if cfg.HTTPAddr != "" {
		srv = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           api.New(quiz, store, logger).Routes(cfg.CORS),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("HTTP API listening", zap.String("addr", cfg.HTTPAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal("HTTP server failed", zap.Error(err))
			}
		}()
	}

	// Telegram bot
	var bot *tele.Bot
	if cfg.BotToken != "" {
		bot, err = tele.NewBot(tele.Settings{
			Token:  cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		})
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}

		logger.Info("Telegram bot initialized")

		bot.Use(middleware.RequireWords(quiz, logger))
		handler.NewHandler(bot, quiz, store, logger).RegisterHandlers()

		logger.Info("Handlers registered")

		go func() {
			logger.Info("Bot started successfully")
			bot.Start()
		}()
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	// Graceful shutdown
	if bot != nil {
		bot.Stop()
	}
	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server shutdown failed", zap.Error(err))
		}
		shutdownCancel()
	}
	cancel()

	logger.Info("Stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadQuiz builds the quiz service from the configured word source.
// The returned func releases the source.
func loadQuiz(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*service.QuizService, func()) {
	source, closeSource, err := openWordSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open word source", zap.Error(err))
		return service.NewUnavailableQuizService(err, logger), func() {}
	}

	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	bank, err := service.LoadWordBank(loadCtx, source, logger)
	if err != nil {
		return service.NewUnavailableQuizService(err, logger), closeSource
	}
	return service.NewQuizService(bank, logger), closeSource
}

func openWordSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.WordSource, func(), error) {
	switch cfg.Words.Source {
	case config.SourceURL:
		return document.NewHTTPSource(cfg.Words.URL), func() {}, nil
	case config.SourcePostgres:
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}

		logger.Info("Database connection established")

		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}

		repo := postgres.NewWordRepo(db)
		if n, err := repo.CountWords(ctx); err == nil {
			logger.Info("Words in database", zap.Int("count", n))
		}
		return repo, func() { db.Close() }, nil
	default:
		return document.NewFileSource(cfg.Words.Path), func() {}, nil
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations creates and seeds the grades and words tables
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runCleanupJob evicts idle quiz sessions on every sweep tick
func runCleanupJob(ctx context.Context, store *service.SessionStore, cfg config.SessionConfig, logger *zap.Logger) {
	ticker := time.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			removed := store.Cleanup(cfg.IdleTTL)
			logger.Debug("Session sweep finished",
				zap.Int("removed", removed),
				zap.Int("active", store.Len()),
			)
		}
	}
}
