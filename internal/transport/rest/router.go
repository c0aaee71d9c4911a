package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"pulsesurvey/internal/service"
	"pulsesurvey/internal/transport/rest/handler"
	"pulsesurvey/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	SurveyTypeService *service.SurveyTypeService
	SubmissionService *service.SubmissionService
	AnalyticsService  *service.AnalyticsService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyTypeHandler := handler.NewSurveyTypeHandler(c.SurveyTypeService)
	submissionHandler := handler.NewSubmissionHandler(c.SubmissionService)
	analyticsHandler := handler.NewAnalyticsHandler(c.AnalyticsService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/submissions", submissionHandler.Submit).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/survey-types", surveyTypeHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/survey-types", surveyTypeHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/survey-types/{surveyTypeId}", surveyTypeHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/survey-types/{surveyTypeId}", surveyTypeHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/survey-types/{surveyTypeId}", surveyTypeHandler.Delete).Methods("DELETE", "OPTIONS")

	adminRoutes.HandleFunc("/submissions/{id}", submissionHandler.Get).Methods("GET", "OPTIONS")

	adminRoutes.HandleFunc("/analytics", analyticsHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/analytics/engagement", analyticsHandler.GetEngagement).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/analytics/burnout", analyticsHandler.GetBurnout).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
