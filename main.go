package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/foundernet/portal-backend/pkg/monitoring"
	"github.com/foundernet/portal-backend/shared/utils"
	v1 "github.com/foundernet/portal-backend/v1"
	"github.com/foundernet/portal-backend/v1/auth"
	"github.com/foundernet/portal-backend/v1/handlers"
	"github.com/foundernet/portal-backend/v1/middleware"
	"github.com/foundernet/portal-backend/v1/services"
)

const serviceName = "portal-backend"

func main() {
	// Structured JSON logging by default
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Load .env in development; a missing file is fine in deployment
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	dbConfig := v1.NewDatabaseConfig()
	db, err := v1.ConnectGormDB(dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	verifier, err := auth.NewJWTVerifier(auth.VerifierConfig{
		Secret: os.Getenv("AUTH_JWT_SECRET"),
		Issuer: os.Getenv("AUTH_JWT_ISSUER"),
	})
	if err != nil {
		slog.Error("Failed to configure JWT verifier", "error", err)
		os.Exit(1)
	}

	shutdownTelemetry, err := monitoring.Setup(context.Background(), monitoring.Config{
		ServiceName: serviceName,
	})
	if err != nil {
		slog.Error("Failed to set up telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			slog.Error("Telemetry shutdown error", "error", err)
		}
	}()

	roles := services.NewRoleClassifier(os.Getenv("ADMIN_EMAILS"))
	authMiddleware := middleware.NewAuthMiddleware(verifier)
	v1Handler := handlers.NewV1Handler(db, roles)

	mux := http.NewServeMux()
	v1Handler.SetupV1Routes(mux, authMiddleware)
	mux.Handle("/metrics", monitoring.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": serviceName})
	})

	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware()
	handler := utils.PanicRecoveryMiddleware(
		corsMiddleware(loggingMiddleware(monitoring.Middleware(mux))))

	serverConfig := utils.DefaultServerConfig()
	server := utils.CreateServer(serverConfig, handler)

	if err := utils.StartServerWithGracefulShutdown(server, serviceName); err != nil {
		os.Exit(1)
	}
}
