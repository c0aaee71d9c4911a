package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsesurvey/internal/cache"
	"pulsesurvey/internal/config"
	"pulsesurvey/internal/repository"
	"pulsesurvey/internal/service"
	"pulsesurvey/internal/transport/rest"
)

// @title Pulse Survey Analytics API
// @version 1.0
// @description Employee experience survey collection and analytics
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	submissionRepo := repository.NewSubmissionRepo(db)
	surveyTypeRepo := repository.NewSurveyTypeRepo(db)

	// Initialize caches
	analyticsCache := cache.NewAnalyticsCache(rdb)

	// Initialize services
	adminPolicy := service.NewEmailAllowlist(cfg.AdminEmails)
	authSvc := service.NewAuthService(cfg.AdminPassword, adminPolicy, []byte(cfg.JWTSecret))
	surveyTypeSvc := service.NewSurveyTypeService(surveyTypeRepo)
	submissionSvc := service.NewSubmissionService(submissionRepo, analyticsCache)
	analyticsSvc := service.NewAnalyticsService(submissionRepo, surveyTypeRepo, analyticsCache)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		SurveyTypeService: surveyTypeSvc,
		SubmissionService: submissionSvc,
		AnalyticsService:  analyticsSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/submissions")
		log.Println("  POST/GET /v1/survey-types")
		log.Println("  GET  /v1/analytics")
		log.Println("  GET  /v1/analytics/engagement")
		log.Println("  GET  /v1/analytics/burnout")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
