package app

import (
	"database/sql"

	"grainsync-console/internal/audit"
	"grainsync-console/internal/config"
	"grainsync-console/internal/department"
	"grainsync-console/internal/designation"
	"grainsync-console/internal/employee"
	"grainsync-console/internal/erpclient"
	"grainsync-console/internal/messaging/kafka"
	"grainsync-console/internal/middleware"
	"grainsync-console/internal/navigation"
	"grainsync-console/internal/rbac"
	"grainsync-console/internal/rbac/infra"
	"grainsync-console/internal/repair"
	"grainsync-console/internal/resource"
	"grainsync-console/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.AppConfig,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	client *erpclient.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	departmentRepo := department.NewRepository(client)
	draftRepo := employee.NewDraftRepository(rdb, cfg.DraftTTL)
	outboxRepo := kafka.NewOutboxRepository(db)
	repairRepo := repair.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewStaticRepository(), enforcer, logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	departmentService := department.NewService(departmentRepo, rdb, logger)
	repairService := repair.NewService(db, repairRepo, outboxRepo, client, cfg.RepairMaxAttempts, logger)
	employeeService := employee.NewServiceWithOutbox(draftRepo, client, departmentService, repairService, outboxRepo, logger)
	navigationService := navigation.NewService(rbacService, logger)
	resourceService := resource.NewService(client, logger)
	userService := user.NewServiceWithAudit(client, cfg.ProtectedUsername, audit.NewZapLogger(logger), logger)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService, logger)
	designationHandler := designation.NewHandler()
	employeeHandler := employee.NewHandler(employeeService, logger)
	navigationHandler := navigation.NewHandler(navigationService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	repairHandler := repair.NewHandler(repairService, logger)
	resourceHandler := resource.NewHandler(resourceService, logger)
	userHandler := user.NewHandler(userService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID(), middleware.RateLimitByIP(20, 40))
	authed := []gin.HandlerFunc{
		middleware.SessionMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(logger),
	}

	api := router.Group("/api/v1")
	{
		navigation.RegisterRoutes(api, navigationHandler, authed...)
		rbac.RegisterRoutes(api, rbacHandler, authed...)
		department.RegisterRoutes(api, departmentHandler, rbacService, authed...)
		designation.RegisterRoutes(api, designationHandler, authed...)
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb, authed...)
		repair.RegisterRoutes(api, repairHandler, rbacService, authed...)
		resource.RegisterRoutes(api, resourceHandler, rbacService, authed...)
		user.RegisterRoutes(api, userHandler, rbacService, authed...)
	}

	return nil
}
