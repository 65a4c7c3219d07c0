package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/openbooks/backend/internal/application/billing"
	catalogapp "github.com/openbooks/backend/internal/application/catalog"
	locationapp "github.com/openbooks/backend/internal/application/location"
	partnerapp "github.com/openbooks/backend/internal/application/partner"
	reportapp "github.com/openbooks/backend/internal/application/report"
	settingsapp "github.com/openbooks/backend/internal/application/settings"
	"github.com/openbooks/backend/internal/infrastructure/cache"
	"github.com/openbooks/backend/internal/infrastructure/config"
	"github.com/openbooks/backend/internal/infrastructure/logger"
	"github.com/openbooks/backend/internal/infrastructure/mail"
	"github.com/openbooks/backend/internal/infrastructure/persistence"
	"github.com/openbooks/backend/internal/interfaces/http/handler"
	"github.com/openbooks/backend/internal/interfaces/http/middleware"
	"github.com/openbooks/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting OpenBooks Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Reference cache is optional. When Redis is disabled the catalog
	// services read through to the database on every call.
	var refCache catalogapp.ReferenceCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisClient.Close()
		}()
		refCache = cache.NewRedisReferenceCache(redisClient)
		log.Info("Redis reference cache enabled")
	}

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	purchaserRepo := persistence.NewGormPurchaserRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	generalRepo := persistence.NewGormGeneralRepository(db.DB)
	currencyRepo := persistence.NewGormCurrencyRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	cabinetRepo := persistence.NewGormCabinetRepository(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	quoteRepo := persistence.NewGormQuoteRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	policyRepo := persistence.NewGormPolicyRepository(db.DB)
	smtpRepo := persistence.NewGormSMTPConfigRepository(db.DB)

	// Application services
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	purchaserService := partnerapp.NewPurchaserService(purchaserRepo)
	employeeService := partnerapp.NewEmployeeService(employeeRepo)
	productService := catalogapp.NewProductService(productRepo)
	generalService := catalogapp.NewGeneralService(generalRepo, refCache)
	currencyService := catalogapp.NewCurrencyService(currencyRepo, refCache)
	warehouseService := locationapp.NewWarehouseService(warehouseRepo, cabinetRepo, storeRepo, productRepo)
	cabinetService := locationapp.NewCabinetService(cabinetRepo, warehouseRepo, storeRepo, productRepo)
	storeService := locationapp.NewStoreService(storeRepo, cabinetRepo)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo)
	quoteService := billingapp.NewQuoteService(quoteRepo, invoiceRepo, db)
	salesReportService := reportapp.NewSalesReportService(invoiceRepo)
	settingsService := settingsapp.NewService(profileRepo, policyRepo, smtpRepo, mail.NewSMTPMailer())

	// HTTP handlers
	customerHandler := handler.NewCustomerHandler(customerService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	purchaserHandler := handler.NewPurchaserHandler(purchaserService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	productHandler := handler.NewProductHandler(productService)
	generalHandler := handler.NewGeneralHandler(generalService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	cabinetHandler := handler.NewCabinetHandler(cabinetService)
	storeHandler := handler.NewStoreHandler(storeService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	reportHandler := handler.NewReportHandler(salesReportService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint outside API versioning
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Partner domain (customers, suppliers, purchasers, employees)
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/customers", customerHandler.Create)
	partnerRoutes.GET("/customers", customerHandler.List)
	partnerRoutes.GET("/customers/:id", customerHandler.GetByID)
	partnerRoutes.GET("/customers/code/:code", customerHandler.GetByCode)
	partnerRoutes.PUT("/customers/:id", customerHandler.Update)
	partnerRoutes.POST("/customers/:id/activate", customerHandler.Activate)
	partnerRoutes.POST("/customers/:id/deactivate", customerHandler.Deactivate)
	partnerRoutes.DELETE("/customers/:id", customerHandler.Delete)
	partnerRoutes.POST("/suppliers", supplierHandler.Create)
	partnerRoutes.GET("/suppliers", supplierHandler.List)
	partnerRoutes.GET("/suppliers/:id", supplierHandler.GetByID)
	partnerRoutes.GET("/suppliers/code/:code", supplierHandler.GetByCode)
	partnerRoutes.PUT("/suppliers/:id", supplierHandler.Update)
	partnerRoutes.POST("/suppliers/:id/activate", supplierHandler.Activate)
	partnerRoutes.POST("/suppliers/:id/deactivate", supplierHandler.Deactivate)
	partnerRoutes.DELETE("/suppliers/:id", supplierHandler.Delete)
	partnerRoutes.POST("/purchasers", purchaserHandler.Create)
	partnerRoutes.GET("/purchasers", purchaserHandler.List)
	partnerRoutes.GET("/purchasers/:id", purchaserHandler.GetByID)
	partnerRoutes.GET("/purchasers/code/:code", purchaserHandler.GetByCode)
	partnerRoutes.PUT("/purchasers/:id", purchaserHandler.Update)
	partnerRoutes.POST("/purchasers/:id/activate", purchaserHandler.Activate)
	partnerRoutes.POST("/purchasers/:id/deactivate", purchaserHandler.Deactivate)
	partnerRoutes.DELETE("/purchasers/:id", purchaserHandler.Delete)
	partnerRoutes.POST("/employees", employeeHandler.Create)
	partnerRoutes.GET("/employees", employeeHandler.List)
	partnerRoutes.GET("/employees/:id", employeeHandler.GetByID)
	partnerRoutes.GET("/employees/code/:code", employeeHandler.GetByCode)
	partnerRoutes.PUT("/employees/:id", employeeHandler.Update)
	partnerRoutes.POST("/employees/:id/activate", employeeHandler.Activate)
	partnerRoutes.POST("/employees/:id/deactivate", employeeHandler.Deactivate)
	partnerRoutes.DELETE("/employees/:id", employeeHandler.Delete)

	// Catalog domain (products, generals, currencies)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/grouped", productHandler.ListGrouped)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.GET("/products/sku/:sku", productHandler.GetBySKU)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.POST("/products/:id/activate", productHandler.Activate)
	catalogRoutes.POST("/products/:id/deactivate", productHandler.Deactivate)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)
	catalogRoutes.POST("/generals", generalHandler.Create)
	catalogRoutes.GET("/generals", generalHandler.List)
	catalogRoutes.GET("/generals/group/:group", generalHandler.GetByGroup)
	catalogRoutes.GET("/generals/:id", generalHandler.GetByID)
	catalogRoutes.PUT("/generals/:id", generalHandler.Update)
	catalogRoutes.DELETE("/generals/:id", generalHandler.Delete)
	catalogRoutes.POST("/currencies", currencyHandler.Create)
	catalogRoutes.GET("/currencies", currencyHandler.List)
	catalogRoutes.GET("/currencies/:id", currencyHandler.GetByID)
	catalogRoutes.PUT("/currencies/:id", currencyHandler.Update)
	catalogRoutes.POST("/currencies/:id/default", currencyHandler.SetDefault)
	catalogRoutes.DELETE("/currencies/:id", currencyHandler.Delete)

	// Location domain (warehouses, cabinets, stores)
	locationRoutes := router.NewDomainGroup("location", "/location")
	locationRoutes.POST("/warehouses", warehouseHandler.Create)
	locationRoutes.GET("/warehouses", warehouseHandler.List)
	locationRoutes.GET("/warehouses/tree", warehouseHandler.Tree)
	locationRoutes.GET("/warehouses/:id", warehouseHandler.GetByID)
	locationRoutes.PUT("/warehouses/:id", warehouseHandler.Update)
	locationRoutes.DELETE("/warehouses/:id", warehouseHandler.Delete)
	locationRoutes.POST("/cabinets", cabinetHandler.Create)
	locationRoutes.GET("/cabinets", cabinetHandler.List)
	locationRoutes.GET("/cabinets/:id", cabinetHandler.GetByID)
	locationRoutes.PUT("/cabinets/:id", cabinetHandler.Update)
	locationRoutes.DELETE("/cabinets/:id", cabinetHandler.Delete)
	locationRoutes.POST("/stores", storeHandler.Create)
	locationRoutes.GET("/stores", storeHandler.List)
	locationRoutes.GET("/stores/:id", storeHandler.GetByID)
	locationRoutes.PUT("/stores/:id", storeHandler.Update)
	locationRoutes.DELETE("/stores/:id", storeHandler.Delete)

	// Billing domain (invoices, quotes)
	billingRoutes := router.NewDomainGroup("billing", "/billing")
	billingRoutes.POST("/invoices", invoiceHandler.Create)
	billingRoutes.GET("/invoices", invoiceHandler.List)
	billingRoutes.GET("/invoices/:id", invoiceHandler.GetByID)
	billingRoutes.PUT("/invoices/:id", invoiceHandler.Update)
	billingRoutes.POST("/invoices/:id/payments", invoiceHandler.AddPayment)
	billingRoutes.POST("/invoices/:id/void", invoiceHandler.Void)
	billingRoutes.DELETE("/invoices/:id", invoiceHandler.Delete)
	billingRoutes.POST("/quotes", quoteHandler.Create)
	billingRoutes.GET("/quotes", quoteHandler.List)
	billingRoutes.GET("/quotes/:id", quoteHandler.GetByID)
	billingRoutes.PUT("/quotes/:id", quoteHandler.Update)
	billingRoutes.POST("/quotes/:id/convert", quoteHandler.Convert)
	billingRoutes.POST("/quotes/:id/expire", quoteHandler.MarkExpired)
	billingRoutes.DELETE("/quotes/:id", quoteHandler.Delete)

	// Reports
	reportRoutes := router.NewDomainGroup("report", "/reports")
	reportRoutes.GET("/sales", reportHandler.Sales)

	// Settings
	settingsRoutes := router.NewDomainGroup("settings", "/settings")
	settingsRoutes.GET("/profile", settingsHandler.GetProfile)
	settingsRoutes.PUT("/profile", settingsHandler.SaveProfile)
	settingsRoutes.GET("/policy", settingsHandler.GetPolicy)
	settingsRoutes.PUT("/policy", settingsHandler.SavePolicy)
	settingsRoutes.GET("/smtp", settingsHandler.GetSMTP)
	settingsRoutes.PUT("/smtp", settingsHandler.SaveSMTP)
	settingsRoutes.POST("/send-email", settingsHandler.SendEmail)

	// System
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(partnerRoutes).
		Register(catalogRoutes).
		Register(locationRoutes).
		Register(billingRoutes).
		Register(reportRoutes).
		Register(settingsRoutes).
		Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
