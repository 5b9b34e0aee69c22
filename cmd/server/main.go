package main

import (
	"log"

	"github.com/bizkhata/bizkhata-backend/internal/alerts"
	"github.com/bizkhata/bizkhata-backend/internal/auth"
	"github.com/bizkhata/bizkhata-backend/internal/business"
	"github.com/bizkhata/bizkhata-backend/internal/config"
	"github.com/bizkhata/bizkhata-backend/internal/contact"
	"github.com/bizkhata/bizkhata-backend/internal/inventory"
	"github.com/bizkhata/bizkhata-backend/internal/product"
	"github.com/bizkhata/bizkhata-backend/internal/reports"
	"github.com/bizkhata/bizkhata-backend/internal/transaction"
	"github.com/bizkhata/bizkhata-backend/internal/user"
	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/bizkhata/bizkhata-backend/pkg/email"
	"github.com/bizkhata/bizkhata-backend/pkg/logger"
	"github.com/bizkhata/bizkhata-backend/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	logger.Setup(cfg.Log.Level, cfg.Log.Format)
	mainLog := logger.WithComponent("server")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		mainLog.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		mainLog.Fatal().Err(err).Msg("failed to run migrations")
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		authHandler := auth.NewHandler(db, cfg)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.RefreshToken)
		api.GET("/auth/logout", authHandler.Logout)
		api.GET("/auth/google", authHandler.GoogleLogin)
		api.GET("/auth/google/callback", authHandler.GoogleCallback)

		protected := api.Group("")
		protected.Use(middleware.AuthRequired(cfg.JWT.Secret))
		{
			protected.GET("/auth/profile", authHandler.Profile)

			// Product routes
			productHandler := product.NewHandler(db)
			protected.GET("/products", productHandler.List)
			protected.POST("/products", productHandler.Create)
			protected.GET("/products/categories", productHandler.GetCategories)
			protected.GET("/products/low-stock", productHandler.GetLowStock)
			protected.GET("/products/:id", productHandler.Get)
			protected.PUT("/products/:id", productHandler.Update)
			protected.DELETE("/products/:id", productHandler.Delete)
			protected.PATCH("/products/:id/toggle", productHandler.ToggleActive)

			importHandler := product.NewImportHandler(db)
			protected.POST("/products/import", importHandler.ImportFile)

			// Contact routes
			contactHandler := contact.NewHandler(db)
			protected.GET("/contacts", contactHandler.List)
			protected.GET("/contacts/customers", contactHandler.ListCustomers)
			protected.GET("/contacts/vendors", contactHandler.ListVendors)
			protected.POST("/contacts", contactHandler.Create)
			protected.GET("/contacts/:id", contactHandler.Get)
			protected.PUT("/contacts/:id", contactHandler.Update)
			protected.DELETE("/contacts/:id", contactHandler.Delete)

			// Transaction routes
			transactionHandler := transaction.NewHandler(db)
			protected.GET("/transactions", transactionHandler.List)
			protected.POST("/transactions", transactionHandler.Create)
			protected.GET("/transactions/sales", transactionHandler.GetSales)
			protected.GET("/transactions/purchases", transactionHandler.GetPurchases)
			protected.GET("/transactions/summary", transactionHandler.GetSummary)
			protected.GET("/transactions/:id", transactionHandler.Get)
			protected.PATCH("/transactions/:id/status", transactionHandler.UpdateStatus)
			protected.PATCH("/transactions/:id/print", transactionHandler.UpdatePrint)
			protected.POST("/transactions/:id/payments", transactionHandler.AddPayment)

			// Inventory routes
			inventoryHandler := inventory.NewHandler(db)
			protected.GET("/inventory", inventoryHandler.GetInventory)
			protected.GET("/inventory/summary", inventoryHandler.GetSummary)
			protected.GET("/inventory/alerts", inventoryHandler.GetAlerts)
			protected.PUT("/inventory/:id/stock", inventoryHandler.UpdateStock)

			// Reports routes
			reportsHandler := reports.NewHandler(db)
			protected.GET("/reports/dashboard", reportsHandler.GetDashboard)
			protected.GET("/reports/inventory", reportsHandler.GetInventoryReport)
			protected.GET("/reports/transactions", reportsHandler.GetTransactionReport)
			protected.GET("/reports/transactions/export", reportsHandler.ExportTransactions)
			protected.GET("/reports/inventory/export", reportsHandler.ExportInventory)
			protected.GET("/reports/customer/:id", reportsHandler.GetCustomerReport)
			protected.GET("/reports/vendor/:id", reportsHandler.GetVendorReport)

			// Business settings
			businessHandler := business.NewHandler(db)
			protected.GET("/business/settings", businessHandler.GetSettings)
			protected.PUT("/business/settings", middleware.RequireRole("owner", "manager"), businessHandler.UpdateSettings)

			// Staff management
			userHandler := user.NewHandler(db)
			protected.GET("/staff", middleware.RequireRole("owner", "manager"), userHandler.ListStaff)
			protected.POST("/staff", middleware.RequireRole("owner", "manager"), userHandler.CreateStaff)
			protected.PUT("/staff/:id", middleware.RequireRole("owner", "manager"), userHandler.UpdateStaff)
			protected.DELETE("/staff/:id", middleware.RequireRole("owner"), userHandler.DeleteStaff)
			protected.GET("/activity-logs", middleware.RequireRole("owner", "manager"), userHandler.GetActivityLogs)
		}
	}

	// Low-stock digest
	emailService := email.NewEmailService(cfg.Email.ResendAPIKey, cfg.Email.FromAddress)
	scheduler := alerts.NewScheduler(db, emailService, logger.WithComponent("alerts"))
	if err := scheduler.Start(cfg.Alerts.LowStockCron); err != nil {
		mainLog.Error().Err(err).Msg("failed to start low-stock scheduler")
	}
	defer scheduler.Stop()

	mainLog.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		mainLog.Fatal().Err(err).Msg("failed to start server")
	}
}
