package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"animehub/internal/metrics"
	"animehub/internal/microservices/http-api/middleware"
	"animehub/internal/microservices/http-api/service"
	"animehub/internal/ratelimit"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Anime   service.AnimeService
	Comment service.CommentService
	Rating  service.RatingService
	Genre   service.GenreService
	Auth    service.AuthService
}

// RouterOptions configures the cross-cutting middleware.
type RouterOptions struct {
	Logger          *zap.Logger
	DB              Pinger
	Visitors        *middleware.VisitorSigner
	CommentThrottle *ratelimit.Throttle
	CORSOrigins     []string
	TrustedProxies  []string
}

// NewRouter wires the public and admin APIs plus the operational endpoints.
func NewRouter(svcs Services, opts RouterOptions) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(opts.TrustedProxies)

	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		metrics.Middleware(),
		middleware.CORS(opts.CORSOrigins),
	)

	health := NewHealthHandler(opts.DB)
	r.GET("/healthz", health.Live)
	r.GET("/readyz", health.Ready)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	animeHandler := NewAnimeHandler(svcs.Anime)
	commentHandler := NewCommentHandler(svcs.Comment)
	ratingHandler := NewRatingHandler(svcs.Rating)
	genreHandler := NewGenreHandler(svcs.Genre)
	authHandler := NewAuthHandler(svcs.Auth)

	api := r.Group("/api")
	{
		public := api.Group("", middleware.VisitorIdentity(opts.Visitors))
		genreHandler.RegisterRoutes(public)

		anime := public.Group("/anime")
		animeHandler.RegisterRoutes(anime)
		commentHandler.RegisterRoutes(anime, middleware.CommentThrottle(opts.CommentThrottle))
		ratingHandler.RegisterRoutes(anime)
	}

	api.POST("/admin/login", authHandler.Login)
	admin := api.Group("/admin", middleware.AuthMiddleware(svcs.Auth))
	{
		admin.GET("/verify", authHandler.Verify)
		animeHandler.RegisterAdminRoutes(admin)
		genreHandler.RegisterAdminRoutes(admin)
		commentHandler.RegisterAdminRoutes(admin)
	}

	return r
}
