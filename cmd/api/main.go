package main

import (
	"time"

	_ "inventorypro/api/swagger" // swagger docs
	"inventorypro/internal/config"
	"inventorypro/internal/handler"
	"inventorypro/internal/middleware"
	"inventorypro/internal/service"
	"inventorypro/internal/store"
	"inventorypro/internal/websocket"
	"inventorypro/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           InventoryPro API
// @version         1.0
// @description     Backend for the InventoryPro warehouse management dashboard. All data is held in memory and reseeded on restart.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		// A missing .env is fine, defaults cover local runs
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	middleware.Init(cfg.JWT.Secret)

	// In-memory collections, optionally seeded with the demo dataset
	stores := store.New()
	if cfg.App.SeedData {
		if err := store.Seed(stores, time.Now()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
		log.Info().Msg("demo dataset seeded")
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Store -> Service -> Handler)
	auditService := service.NewAuditService(stores)
	productService := service.NewProductService(stores, auditService)
	inventoryService := service.NewInventoryService(stores, auditService, wsHub)
	procurementService := service.NewProcurementService(stores, auditService, wsHub)
	salesService := service.NewSalesService(stores, auditService, wsHub)
	partnerService := service.NewPartnerService(stores, auditService)
	warehouseService := service.NewWarehouseService(stores, auditService, wsHub)
	orderService := service.NewOrderService(stores, auditService, wsHub)
	userService := service.NewUserService(stores, auditService, time.Duration(cfg.JWT.Expiration)*time.Minute)
	statisticsService := service.NewStatisticsService(stores)
	settingsService := service.NewSettingsService(stores, auditService)

	// Initialize Handlers
	productHandler := handler.NewProductHandler(productService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	procurementHandler := handler.NewProcurementHandler(procurementService)
	salesHandler := handler.NewSalesHandler(salesService)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	warehouseHandler := handler.NewWarehouseHandler(warehouseService)
	orderHandler := handler.NewOrderHandler(orderService)
	userHandler := handler.NewUserHandler(userService, cfg.JWT.Expiration*60)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Set up Gin Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.HTTP.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.Secret())
	})

	// Register API Routes
	productHandler.RegisterRoutes(router.Group(""))
	inventoryHandler.RegisterRoutes(router.Group(""))
	procurementHandler.RegisterRoutes(router.Group(""))
	salesHandler.RegisterRoutes(router.Group(""))
	partnerHandler.RegisterRoutes(router.Group(""))
	warehouseHandler.RegisterRoutes(router.Group(""))
	orderHandler.RegisterRoutes(router.Group(""))
	userHandler.RegisterRoutes(router.Group(""))
	statisticsHandler.RegisterRoutes(router.Group(""))
	settingsHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	log.Info().Str("port", cfg.HTTP.Port).Msg("server listening")
	if err := router.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
