package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"barbershop-api/internal/config"
	custommiddleware "barbershop-api/internal/middleware"
	"barbershop-api/internal/repository"
	"barbershop-api/internal/service"
	"barbershop-api/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *sql.DB
	redis  *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env == "development"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Redis client for rate limiting the public write endpoints
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Initialize repositories
	repo := repository.New(db)

	// Initialize services
	notificationService := service.NewNotificationService(repo)
	orderService := service.NewOrderService(repo, notificationService)
	appointmentService := service.NewAppointmentService(repo, notificationService)
	messageService := service.NewMessageService(repo, notificationService)
	catalogService := service.NewCatalogService(repo, notificationService)
	revenueService := service.NewRevenueService(repo)
	statsService := service.NewStatsService(repo)
	customerService := service.NewCustomerService(repo)
	authService := service.NewAuthService(repo, cfg.JWT.Secret)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService, logger)
	orderHandler := transport.NewOrderHandler(orderService, logger)
	appointmentHandler := transport.NewAppointmentHandler(appointmentService, logger)
	messageHandler := transport.NewMessageHandler(messageService, logger)
	catalogHandler := transport.NewCatalogHandler(catalogService, logger)
	revenueHandler := transport.NewRevenueHandler(revenueService, logger)
	notificationHandler := transport.NewNotificationHandler(notificationService, logger)
	statsHandler := transport.NewStatsHandler(statsService, logger)
	customerHandler := transport.NewCustomerHandler(customerService, logger)

	// Create middleware stacks
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	requireAdmin := custommiddleware.RequireAdmin(logger)
	rateLimit := custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
		RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
		Window:            time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		KeyPrefix:         "ratelimit:public",
	}, logger)

	// Register routes
	authHandler.RegisterRoutes(router, authMiddleware)
	orderHandler.RegisterRoutes(router, rateLimit, authMiddleware, requireAdmin)
	appointmentHandler.RegisterRoutes(router, rateLimit, authMiddleware, requireAdmin)
	messageHandler.RegisterRoutes(router, rateLimit, authMiddleware, requireAdmin)
	catalogHandler.RegisterRoutes(router, authMiddleware, requireAdmin)
	revenueHandler.RegisterRoutes(router, authMiddleware, requireAdmin)
	notificationHandler.RegisterRoutes(router, authMiddleware, requireAdmin)
	statsHandler.RegisterRoutes(router, authMiddleware, requireAdmin)
	customerHandler.RegisterRoutes(router, authMiddleware, requireAdmin)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
