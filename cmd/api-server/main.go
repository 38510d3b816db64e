package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"animehub/database"
	"animehub/internal/config"
	"animehub/internal/logger"
	"animehub/internal/microservices/http-api/handler"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/repository"
	"animehub/internal/microservices/http-api/service"
	"animehub/internal/ratelimit"
)

// commentBurst is how many comments a visitor may post back to back.
const commentBurst = 3

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zl.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectDB(cfg, zl)
	if err != nil {
		zl.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close()

	limiter, redisClient := loginLimiter(ctx, cfg, zl)
	if redisClient != nil {
		defer redisClient.Close()
	}

	animeRepo := repository.NewAnimeRepository(db.Gorm)
	genreRepo := repository.NewGenreRepository(db.Gorm)
	commentRepo := repository.NewCommentRepository(db.Gorm)
	ratingRepo := repository.NewRatingRepository(db.Gorm)
	adminRepo := repository.NewAdminRepository(db.Gorm)

	svcs := handler.Services{
		Anime:   service.NewAnimeService(animeRepo),
		Comment: service.NewCommentService(commentRepo, animeRepo),
		Rating:  service.NewRatingService(ratingRepo, animeRepo),
		Genre:   service.NewGenreService(genreRepo),
		Auth:    service.NewAuthService(adminRepo, limiter, cfg, zl),
	}

	router := handler.NewRouter(svcs, handler.RouterOptions{
		Logger:          zl,
		DB:              db.SQL,
		Visitors:        middleware.NewVisitorSigner(cfg.VisitorSecret),
		CommentThrottle: ratelimit.NewThrottle(cfg.CommentRatePerMinute, commentBurst),
		CORSOrigins:     cfg.CORSOrigins,
		TrustedProxies:  cfg.TrustedProxies,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zl.Info("api server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.GoEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("http server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}

// loginLimiter connects to Redis when configured. Without Redis the limiter is a no-op.
func loginLimiter(ctx context.Context, cfg *config.Config, zl *zap.Logger) (*ratelimit.Limiter, *goredis.Client) {
	if cfg.RedisURL == "" {
		zl.Warn("REDIS_URL not set, admin login attempts are not rate limited")
		return ratelimit.New(nil, cfg.LoginMaxAttempts, cfg.LoginWindow), nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	client, err := ratelimit.Connect(pingCtx, cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		zl.Warn("redis unavailable, admin login attempts are not rate limited", zap.Error(err))
		return ratelimit.New(nil, cfg.LoginMaxAttempts, cfg.LoginWindow), nil
	}

	zl.Info("login limiter enabled",
		zap.Int("max_attempts", cfg.LoginMaxAttempts),
		zap.Duration("window", cfg.LoginWindow),
	)
	return ratelimit.New(ratelimit.NewRedisStore(client), cfg.LoginMaxAttempts, cfg.LoginWindow), client
}
