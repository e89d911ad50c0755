package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-front-desk/internal/config"
	"hospital-front-desk/internal/database"
	"hospital-front-desk/internal/handler"
	"hospital-front-desk/internal/middleware"
	"hospital-front-desk/internal/models"
	"hospital-front-desk/internal/repository"
	"hospital-front-desk/internal/service"
	"hospital-front-desk/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)

	// Ensure the bootstrap admin account exists
	if err := database.SeedAdminUser(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	directoryService := service.NewDirectoryService(patientRepo, doctorRepo, userRepo, auditRepo)
	bookingService := service.NewBookingService(appointmentRepo, patientRepo, doctorRepo, auditRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(directoryService)
	doctorHandler := handler.NewDoctorHandler(directoryService)
	appointmentHandler := handler.NewAppointmentHandler(bookingService)
	dashboardHandler := handler.NewDashboardHandler(directoryService, bookingService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-front-desk",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// Everything below requires a valid session
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/auth/logout", authHandler.Logout)

		// Per-role dashboards
		authed.GET("/dashboard_admin", middleware.RequireRoles(models.RoleAdmin), dashboardHandler.AdminDashboard)
		authed.GET("/dashboard_doctor", middleware.RequireRoles(models.RoleDoctor), dashboardHandler.DoctorDashboard)
		authed.GET("/dashboard_receptionist", middleware.RequireRoles(models.RoleReceptionist), dashboardHandler.ReceptionistDashboard)
		authed.GET("/dashboard_patient", middleware.RequireRoles(models.RolePatient), dashboardHandler.PatientDashboard)

		// Master data management (admin only)
		admin := authed.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/patients", patientHandler.ListPatients)
			admin.POST("/patients", patientHandler.CreatePatient)
			admin.GET("/doctors", doctorHandler.ListDoctors)
			admin.POST("/doctors", doctorHandler.CreateDoctor)
		}

		// Booking desk (admin and receptionist)
		booking := authed.Group("/admin/appointments", middleware.RequireRoles(models.RoleAdmin, models.RoleReceptionist))
		{
			booking.GET("", appointmentHandler.ListAppointments)
			booking.GET("/options", appointmentHandler.GetBookingOptions)
			booking.POST("", appointmentHandler.CreateAppointment)
		}
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
