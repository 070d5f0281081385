package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/corexify/backend/internal/config"
	"github.com/corexify/backend/internal/handlers"
	"github.com/corexify/backend/internal/mailer"
	"github.com/corexify/backend/internal/repositories"
	"github.com/corexify/backend/internal/routes"
	"github.com/corexify/backend/internal/services"
	"github.com/corexify/backend/internal/storage"
)

// NewServer connects the document store and media host, wires every
// repository/service/handler and returns a configured HTTP server.
func NewServer(cfg *config.Config, logger zerolog.Logger) (*http.Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo at %s: %w", cfg.MongoURI, err)
	}
	logger.Info().Str("database", cfg.MongoDB).Msg("connected to mongo")

	db := client.Database(cfg.MongoDB)
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	media, err := storage.NewCloudinaryStore(
		cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, logger)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	mail := mailer.NewSMTPMailer(cfg.SMTPServer, cfg.SMTPPort, cfg.AdminEmail, cfg.EmailPassword, logger)

	// Dependency injection
	contactRepo := repositories.NewContactRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	portfolioRepo := repositories.NewPortfolioRepository(db)
	adminRepo := repositories.NewAdminUserRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)

	authService := services.NewAuthService(adminRepo, cfg.JWTSecret)
	adminUserService := services.NewAdminUserService(adminRepo, cfg.SuperAdminEmail)
	contactService := services.NewContactService(contactRepo, mail)
	inquiryService := services.NewInquiryService(inquiryRepo, media, mail)
	portfolioService := services.NewPortfolioService(portfolioRepo, media)
	subscriberService := services.NewSubscriberService(subscriberRepo, mail)
	dashboardService := services.NewDashboardService(
		contactRepo, inquiryRepo, portfolioRepo, subscriberRepo, adminRepo)

	handlers.RegisterValidators()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(router, routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Contact:    handlers.NewContactHandler(contactService),
		Inquiry:    handlers.NewInquiryHandler(inquiryService),
		Portfolio:  handlers.NewPortfolioHandler(portfolioService),
		AdminUser:  handlers.NewAdminUserHandler(adminUserService),
		Subscriber: handlers.NewSubscriberHandler(subscriberService),
		Dashboard:  handlers.NewDashboardHandler(dashboardService),
	}, authService)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	srv.RegisterOnShutdown(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Warn().Err(err).Msg("mongo disconnect failed")
		}
	})

	return srv, nil
}
