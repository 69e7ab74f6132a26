// Command server runs the store management HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/klauspost/compress/gzhttp"

	"storecore/internal/core/config"
	"storecore/internal/domain/auth"
	"storecore/internal/domain/catalogs/brand"
	"storecore/internal/domain/catalogs/category"
	"storecore/internal/domain/catalogs/product"
	"storecore/internal/domain/catalogs/unit"
	"storecore/internal/domain/catalogs/warehouse"
	v1 "storecore/internal/http/v1"
	"storecore/internal/storage/postgres"
	"storecore/internal/storage/postgres/authrepo"
	"storecore/internal/storage/postgres/catalogrepo"
	"storecore/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		logger.Default().Errorw("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	pool, err := postgres.NewPool(connectCtx, postgres.PoolConfig{
		DSN:               cfg.DatabaseURL,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBConnLifetime,
		MaxConnIdleTime:   cfg.DBConnLifetime / 2,
		HealthCheckPeriod: cfg.DBHealthCheck,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	// Repositories
	brandRepo := catalogrepo.NewBrandRepo(txm)
	categoryRepo := catalogrepo.NewCategoryRepo(txm)
	unitRepo := catalogrepo.NewUnitRepo(txm)
	warehouseRepo := catalogrepo.NewWarehouseRepo(txm)
	productRepo := catalogrepo.NewProductRepo(txm)
	userRepo := authrepo.NewUserRepo(txm)
	roleRepo := authrepo.NewRoleRepo(txm)

	// Services
	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		TokenTTL: cfg.TokenTTL,
	})
	authService := auth.NewService(userRepo, txm, jwtService)
	authorizer := auth.NewAuthorizer(roleRepo, txm)

	brandService := brand.NewService(brandRepo, txm)
	categoryService := category.NewService(categoryRepo, txm)
	unitService := unit.NewService(unitRepo, txm)
	warehouseService := warehouse.NewService(warehouseRepo, txm)
	productService := product.NewService(productRepo, categoryRepo, brandRepo, unitRepo, txm)

	router := v1.NewRouter(v1.RouterConfig{
		Logger:      log,
		Pool:        pool.Pool,
		AuthService: authService,
		Authorizer:  authorizer,
		Brands:      brandService,
		Categories:  categoryService,
		Units:       unitService,
		Warehouses:  warehouseService,
		Products:    productService,
		Development: !cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: gzhttp.GzipHandler(router),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("http server listening", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
