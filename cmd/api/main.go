package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/barangayhub/admin-api/internal/api"
	"github.com/barangayhub/admin-api/internal/core/domain"
	"github.com/barangayhub/admin-api/internal/core/ports"
	"github.com/barangayhub/admin-api/internal/infrastructure/config"
	mongostore "github.com/barangayhub/admin-api/internal/infrastructure/db/mongo"
	redisstore "github.com/barangayhub/admin-api/internal/infrastructure/db/redis"
	"github.com/barangayhub/admin-api/internal/infrastructure/queue"
	"github.com/barangayhub/admin-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.SessionSecret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("SESSION_SECRET is required outside development")
		}
		cfg.SessionSecret = "dev-only-insecure-secret"
		log.Warn().Msg("SESSION_SECRET not set, using insecure development default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongostore.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("creating indexes failed")
	}
	if err := ensureAdmin(ctx, userRepo, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("seeding initial admin failed")
	}

	// --- Redis ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Audit pipeline ---
	auditRepo := mongostore.NewAuditRepository(db)
	dispatcher := queue.NewDispatcher(4, auditRepo, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg, dispatcher, log)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: e,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
}

// ensureAdmin seeds the configured admin account when the user collection
// is empty, so a fresh deployment has a way in.
func ensureAdmin(ctx context.Context, repo ports.UserRepository, cfg *config.Config, log zerolog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Warn().Msg("no users exist and ADMIN_EMAIL/ADMIN_PASSWORD are not set; panel is unreachable until seeded")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = repo.Create(ctx, &domain.User{
		Email:        cfg.Admin.Email,
		PasswordHash: string(hash),
		FirstName:    cfg.Admin.FirstName,
		LastName:     cfg.Admin.LastName,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	log.Info().Str("email", cfg.Admin.Email).Msg("seeded initial admin account")
	return nil
}
