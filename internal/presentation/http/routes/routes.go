package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/optisys/optisys-api/internal/config"
	"github.com/optisys/optisys-api/internal/presentation/http/handler"
	"github.com/optisys/optisys-api/internal/presentation/http/middleware"
	"github.com/optisys/optisys-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Patient      *handler.PatientHandler
	Prescription *handler.PrescriptionHandler
	Appointment  *handler.AppointmentHandler
	Inventory    *handler.InventoryHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerPatientRoutes(protected, h)
		registerAppointmentRoutes(protected, h)
		registerInventoryRoutes(protected, h)
	}

	return router
}

func registerPatientRoutes(protected *gin.RouterGroup, h *Handlers) {
	patients := protected.Group("/patients")
	{
		patients.GET("", h.Patient.List)
		patients.POST("", h.Patient.Create)
		patients.GET("/:id", h.Patient.Get)
		patients.PUT("/:id", h.Patient.Update)
		patients.DELETE("/:id", h.Patient.Delete)

		// Prescriptions live under their owning patient
		patients.GET("/:id/prescriptions", h.Prescription.List)
		patients.POST("/:id/prescriptions", h.Prescription.Create)
		patients.DELETE("/:id/prescriptions/:prescriptionId", h.Prescription.Delete)
		patients.GET("/:id/prescriptions/:prescriptionId/pdf", h.Prescription.Print)

		patients.GET("/:id/appointments", h.Appointment.ListByPatient)
	}
}

func registerAppointmentRoutes(protected *gin.RouterGroup, h *Handlers) {
	appointments := protected.Group("/appointments")
	{
		appointments.GET("", h.Appointment.List)
		appointments.POST("", h.Appointment.Create)
		appointments.GET("/:id", h.Appointment.Get)
		appointments.PUT("/:id", h.Appointment.Update)
		appointments.DELETE("/:id", h.Appointment.Delete)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/inventory")
	{
		items.GET("", h.Inventory.List)
		items.GET("/low-stock", h.Inventory.ListLowStock)
		items.POST("", h.Inventory.Create)
		items.GET("/:id", h.Inventory.Get)
		items.PUT("/:id", h.Inventory.Update)
		items.DELETE("/:id", h.Inventory.Delete)
	}
}
