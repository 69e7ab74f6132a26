// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"storecore/internal/domain/auth"
	"storecore/internal/domain/catalogs/brand"
	"storecore/internal/domain/catalogs/category"
	"storecore/internal/domain/catalogs/product"
	"storecore/internal/domain/catalogs/unit"
	"storecore/internal/domain/catalogs/warehouse"
	"storecore/internal/http/v1/handlers"
	"storecore/internal/http/v1/middleware"
	"storecore/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Logger *logger.Logger

	// Pool backs the readiness probe
	Pool *pgxpool.Pool

	AuthService *auth.Service
	Authorizer  *auth.Authorizer

	Brands     *brand.Service
	Categories *category.Service
	Units      *unit.Service
	Warehouses *warehouse.Service
	Products   *product.Service

	Development bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	healthHandler.Register(router.Group("/health"))

	v1 := router.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(cfg.AuthService)
		v1.POST("/auth/login", authHandler.Login)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.AuthService))

		protected.GET("/auth/me", authHandler.Me)

		registerCatalog(protected, cfg, "/brands", "brand_permission",
			handlers.NewBrandHandler(cfg.Brands))
		registerCatalog(protected, cfg, "/categories", "category_permission",
			handlers.NewCategoryHandler(cfg.Categories))
		registerCatalog(protected, cfg, "/units", "unit_permission",
			handlers.NewUnitHandler(cfg.Units))
		registerCatalog(protected, cfg, "/warehouses", "warehouse_permission",
			handlers.NewWarehouseHandler(cfg.Warehouses))
		registerCatalog(protected, cfg, "/products", "product_permission",
			handlers.NewProductHandler(cfg.Products))
	}

	return router
}

// routeRegistrar mounts a handler's routes on a group.
type routeRegistrar interface {
	Register(rg *gin.RouterGroup)
}

// registerCatalog mounts one catalog handler behind its permission gate.
func registerCatalog(parent *gin.RouterGroup, cfg RouterConfig, path, permission string, h routeRegistrar) {
	group := parent.Group(path)
	group.Use(middleware.RequirePermission(cfg.Authorizer, permission))
	h.Register(group)
}
