package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"hundredgaj/internal/audit"
	"hundredgaj/internal/auth"
	"hundredgaj/internal/config"
	"hundredgaj/internal/email"
	"hundredgaj/internal/rent"
	"hundredgaj/internal/subscription"
)

// Deps are the collaborators the HTTP layer routes to. DB and Email are
// optional; Audit falls back to a no-op recorder.
type Deps struct {
	DB            *sqlx.DB
	Email         *email.Service
	Audit         audit.Recorder
	Subscriptions subscription.Service
	Rent          rent.Service
}

type Server struct {
	router  *gin.Engine
	http    *http.Server
	limiter *RateLimiter
}

func New(cfg *config.Config, deps Deps) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if deps.Audit == nil {
		deps.Audit = audit.NopRecorder{}
	}

	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(),
		limiter.Middleware(),
	)

	var db pinger
	if deps.DB != nil {
		db = deps.DB
	}
	router.GET("/health", Health(db))
	router.GET("/metrics", Metrics())
	router.GET("/plans", subscription.ListPlans)
	SetupSwagger(router)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	adminMiddleware := auth.RequireRole(auth.RoleAdmin)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	subscription.NewHandler(deps.Subscriptions).RegisterRoutes(protected)
	rent.NewHandler(deps.Rent).RegisterRoutes(protected, adminMiddleware)

	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("/audit/:subject/:id", AuditTrail(deps.Audit))
		if deps.Email != nil {
			admin.POST("/test-email", TestEmail(deps.Email))
		}
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks until the listener fails or Shutdown is called, in which
// case it returns http.ErrServerClosed.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
