package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/optisys/optisys-api/internal/application/history"
	"github.com/optisys/optisys-api/internal/application/service"
	"github.com/optisys/optisys-api/internal/config"
	"github.com/optisys/optisys-api/internal/domain/entity"
	"github.com/optisys/optisys-api/internal/infrastructure/database"
	"github.com/optisys/optisys-api/internal/infrastructure/repository"
	"github.com/optisys/optisys-api/internal/presentation/http/handler"
	"github.com/optisys/optisys-api/internal/presentation/http/routes"
	"github.com/optisys/optisys-api/pkg/pdfgen"
	"github.com/optisys/optisys-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	// Per-patient history cache, primed from confirmed reads
	historyStore := history.NewStore()

	// Shared off-screen raster surface for the print pipeline
	surface := pdfgen.NewSurface(cfg.Print.PixelsPerMM)

	clinic := entity.ClinicInfo{
		Name:    cfg.Clinic.Name,
		Address: cfg.Clinic.Address,
		Phone:   cfg.Clinic.Phone,
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	patientService := service.NewPatientService(patientRepo, historyStore)
	prescriptionService := service.NewPrescriptionService(prescriptionRepo, patientRepo, historyStore)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	printService := service.NewPrintService(prescriptionRepo, patientRepo, clinic, surface)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Patient:      handler.NewPatientHandler(patientService),
		Prescription: handler.NewPrescriptionHandler(prescriptionService, printService),
		Appointment:  handler.NewAppointmentHandler(appointmentService),
		Inventory:    handler.NewInventoryHandler(inventoryService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
