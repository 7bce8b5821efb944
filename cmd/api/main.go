package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/gems2004/Stocky-sub001/internal/handler"
	"github.com/gems2004/Stocky-sub001/internal/middleware"
	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/internal/service"
	"github.com/gems2004/Stocky-sub001/internal/ws"
	"github.com/gems2004/Stocky-sub001/pkg/config"
	"github.com/gems2004/Stocky-sub001/pkg/database"
	"github.com/gems2004/Stocky-sub001/pkg/jwt"
	"github.com/gems2004/Stocky-sub001/pkg/logger"
	"github.com/gems2004/Stocky-sub001/pkg/metrics"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Log.Level, cfg.Server.Env); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		logger.Get().Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.User{},
		&model.Customer{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.InventoryLog{},
		&model.StoreSetting{},
	); err != nil {
		logger.Get().Fatal("failed to run migrations", zap.Error(err))
	}

	wsHub := ws.NewHub()
	go wsHub.Run()

	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)

	// Wiring
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	userRepo := repository.NewUserRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	reportRepo := repository.NewReportRepo(db)
	settingRepo := repository.NewSettingRepo(db)

	inventoryService := service.NewInventoryService(inventoryRepo, wsHub)
	reportService := service.NewReportService(reportRepo)
	productService := service.NewProductService(productRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	customerService := service.NewCustomerService(customerRepo)
	userService := service.NewUserService(userRepo)
	transactionService := service.NewTransactionService(transactionRepo, wsHub)
	authService := service.NewAuthService(userRepo, tokens)
	setupService := service.NewSetupService(settingRepo, userRepo)

	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	reportHandler := handler.NewReportHandler(reportService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	customerHandler := handler.NewCustomerHandler(customerService)
	userHandler := handler.NewUserHandler(userService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	authHandler := handler.NewAuthHandler(authService)
	setupHandler := handler.NewSetupHandler(setupService)

	app := fiber.New(fiber.Config{
		AppName: "Stocky API v1.0",
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(metrics.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api/v1")

	// Public routes
	api.Post("/auth/login", authHandler.Login)
	api.Get("/setup/status", setupHandler.Status)
	api.Post("/setup", setupHandler.Initialize)

	// All routes below require authentication; mutations require ADMIN.
	protected := api.Group("", middleware.RequireAuth(tokens, userRepo))
	admin := middleware.RequireAdmin()

	protected.Post("/inventory/adjust", admin, inventoryHandler.Adjust)
	protected.Get("/inventory/logs", inventoryHandler.GetLogs)
	protected.Get("/inventory/logs/:id", inventoryHandler.GetLog)

	protected.Get("/reports/weekly-sales", reportHandler.WeeklySales)
	protected.Get("/reports/dashboard-stats", reportHandler.DashboardStats)
	protected.Get("/reports/low-stock", reportHandler.LowStock)

	protected.Get("/products", productHandler.GetAll)
	protected.Get("/products/search", productHandler.Search)
	protected.Get("/products/:id", productHandler.GetByID)
	protected.Post("/products", admin, productHandler.Create)
	protected.Put("/products/:id", admin, productHandler.Update)
	protected.Delete("/products/:id", admin, productHandler.Delete)

	protected.Get("/category", categoryHandler.GetAll)
	protected.Get("/category/:id", categoryHandler.GetByID)
	protected.Post("/category", admin, categoryHandler.Create)
	protected.Put("/category/:id", admin, categoryHandler.Update)
	protected.Delete("/category/:id", admin, categoryHandler.Delete)

	protected.Get("/supplier", supplierHandler.GetAll)
	protected.Get("/supplier/:id", supplierHandler.GetByID)
	protected.Post("/supplier", admin, supplierHandler.Create)
	protected.Put("/supplier/:id", admin, supplierHandler.Update)
	protected.Delete("/supplier/:id", admin, supplierHandler.Delete)

	protected.Get("/customers", customerHandler.GetAll)
	protected.Get("/customers/:id", customerHandler.GetByID)
	protected.Post("/customers", customerHandler.Create)
	protected.Put("/customers/:id", customerHandler.Update)
	protected.Delete("/customers/:id", admin, customerHandler.Delete)

	protected.Get("/users", admin, userHandler.GetAll)
	protected.Get("/users/:id", admin, userHandler.GetByID)
	protected.Post("/users", admin, userHandler.Create)
	protected.Put("/users/:id", admin, userHandler.Update)
	protected.Delete("/users/:id", admin, userHandler.Delete)

	protected.Get("/transactions", transactionHandler.GetAll)
	protected.Get("/transactions/:id", transactionHandler.GetByID)
	protected.Post("/transactions", transactionHandler.Create)
	protected.Delete("/transactions/:id", admin, transactionHandler.Refund)

	// WebSocket: live stock updates for the admin console
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logger.Get().Fatal("server stopped", zap.Error(err))
		}
	}()
	logger.Get().Info("server started", zap.String("port", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Get().Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Get().Fatal("forced shutdown", zap.Error(err))
	}
	logger.Get().Info("server exited")
}
