package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "wegorent-backend/internal/api/http"
	"wegorent-backend/internal/config"
	"wegorent-backend/internal/contract"
	"wegorent-backend/internal/logger"
	"wegorent-backend/internal/repository/postgres"
	"wegorent-backend/internal/security"
	"wegorent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting WegoRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	builder := contract.NewBuilder()

	authSvc := service.NewAuthService(store.PartnerRepository, tokenManager)
	clientSvc := service.NewClientService(store.ClientRepository)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository)
	contractSvc := service.NewContractService(
		store.ContractRepository,
		store.ClientRepository,
		store.VehicleRepository,
		store.PartnerRepository,
		store.BlacklistRepository,
		builder,
	)
	smartSvc := service.NewSmartContractService(
		store.SmartContractRepository,
		store.ClientRepository,
		store.VehicleRepository,
		store.PartnerRepository,
		store.BlacklistRepository,
		builder,
	)
	blacklistSvc := service.NewBlacklistService(store.BlacklistRepository, store.ClientRepository)
	insuranceSvc := service.NewInsuranceService(store.VehicleRepository)
	transferSvc := service.NewTransferService(store.TransferRepository, emailSvc)

	// Initialize Router
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Tokens:       tokenManager,
		AuthSvc:      authSvc,
		ClientSvc:    clientSvc,
		VehicleSvc:   vehicleSvc,
		ContractSvc:  contractSvc,
		SmartSvc:     smartSvc,
		BlacklistSvc: blacklistSvc,
		InsuranceSvc: insuranceSvc,
		TransferSvc:  transferSvc,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
