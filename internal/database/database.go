package database

import (
	"fmt"
	"log"
	"time"

	"hospital-front-desk/internal/config"
	"hospital-front-desk/internal/models"
	"hospital-front-desk/pkg/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect initializes and returns a GORM database connection
func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	log.Println("Successfully connected to database")

	return db
}

// SeedAdminUser creates the bootstrap admin account if it does not exist yet.
// Without at least one admin nobody can provision patients or doctors.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.Seed.AdminUsername == "" || cfg.Seed.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", cfg.Seed.AdminUsername).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	passwordHash, err := utils.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     cfg.Seed.AdminUsername,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Seeded admin user %s", admin.Username)
	return nil
}
