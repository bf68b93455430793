package app

import (
	"database/sql"

	"go-hrportal/internal/account"
	"go-hrportal/internal/bootstrap"
	"go-hrportal/internal/education"
	"go-hrportal/internal/employee"
	"go-hrportal/internal/messaging/kafka"
	"go-hrportal/internal/middleware"
	"go-hrportal/internal/notification"
	"go-hrportal/internal/shared/credentials"
	"go-hrportal/internal/university"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	accountRepo := account.NewRepository(gormDB)
	educationRepo := education.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	universityRepo := university.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Shared collaborators ---
	creds := credentials.New()
	sink := notification.NewOutboxSink(outboxRepo)
	auditLogger := bootstrap.NewStdoutAuditLogger()

	// --- Services ---
	accountService := account.NewService(
		db, accountRepo, employeeRepo, universityRepo, educationRepo,
		outboxRepo, creds, sink, rdb,
	)
	educationService := education.NewService(educationRepo, universityRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	universityService := university.NewService(universityRepo)

	// --- Handlers ---
	accountHandler := account.NewHandler(accountService, auditLogger)
	educationHandler := education.NewHandler(educationService)
	employeeHandler := employee.NewHandler(employeeService)
	universityHandler := university.NewHandler(universityService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		account.RegisterRoutes(api, accountHandler)
		education.RegisterRoutes(api, educationHandler)
		employee.RegisterRoutes(api, employeeHandler)
		university.RegisterRoutes(api, universityHandler)
	}

	return nil
}
