package router

import (
	"time"

	"dapurstok/internal/classify"
	"dapurstok/internal/config"
	"dapurstok/internal/handler"
	"dapurstok/internal/infra"
	"dapurstok/internal/middleware"
	"dapurstok/internal/repository"
	"dapurstok/internal/service"
	"dapurstok/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	docs := infra.NewDocumentStore(cfg.ArchiveRoot)
	classifier := classify.Default()
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	poRepo := repository.NewPurchaseOrderRepository(db)
	receiptRepo := repository.NewGoodsReceiptRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpirationHours)
	inventorySvc := service.NewInventoryService(movementRepo, productRepo)
	productSvc := service.NewProductService(productRepo, classifier, rdb)
	supplierSvc := service.NewSupplierService(supplierRepo)
	poSvc := service.NewPurchaseOrderService(poRepo, supplierRepo, productRepo, receiptRepo,
		inventorySvc, classifier, docs, dispatcher, cfg.PurchasingTo)
	receiptSvc := service.NewGoodsReceiptService(receiptRepo, poRepo, inventorySvc,
		dispatcher, cfg.PurchasingTo)
	recipeSvc := service.NewRecipeService(recipeRepo, productRepo, deliveryRepo,
		inventorySvc, classifier)
	distributionSvc := service.NewDistributionService(deliveryRepo)
	dashboardSvc := service.NewDashboardService(productRepo, supplierRepo, poRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productH := handler.NewProductHandler(productSvc)
	supplierH := handler.NewSupplierHandler(supplierSvc)
	poH := handler.NewPurchaseOrderHandler(poSvc, docs)
	receiptH := handler.NewReceiptHandler(receiptSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	recipeH := handler.NewRecipeHandler(recipeSvc)
	distributionH := handler.NewDistributionHandler(distributionSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	archiveH := handler.NewArchiveHandler(docs)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: admin, warehouse, kitchen — declared per-endpoint
		anyRole := middleware.RequireRole("admin", "warehouse", "kitchen")
		warehouse := middleware.RequireRole("admin", "warehouse")
		kitchen := middleware.RequireRole("admin", "kitchen")
		admin := middleware.RequireRole("admin")

		v1.GET("/dashboard", anyRole, dashboardH.Summary)

		v1.GET("/products", anyRole, productH.List)
		v1.GET("/products/categories", anyRole, productH.Categories)
		v1.GET("/products/classify", anyRole, productH.Classify)
		v1.GET("/products/:id", anyRole, productH.GetByID)
		prods := v1.Group("/products", warehouse)
		{
			prods.POST("", productH.Create)
			prods.PUT("/:id", productH.Update)
		}

		v1.GET("/suppliers", anyRole, supplierH.List)
		v1.GET("/suppliers/:id", anyRole, supplierH.GetByID)
		suppliers := v1.Group("/suppliers", admin)
		{
			suppliers.POST("", supplierH.Create)
			suppliers.PUT("/:id", supplierH.Update)
		}

		pos := v1.Group("/purchase-orders")
		{
			pos.GET("", anyRole, poH.List)
			pos.GET("/:id", anyRole, poH.GetByID)
			pos.GET("/:id/pdf", anyRole, poH.ServePDF)
			pos.POST("", warehouse, poH.Create)
			pos.POST("/generate", warehouse, poH.Generate)
			pos.PATCH("/:id/status", warehouse, poH.UpdateStatus)
			pos.PUT("/:id/items", warehouse, poH.UpdateItems)
		}

		v1.POST("/goods-receipts", warehouse, receiptH.Receive)
		v1.GET("/goods-receipts/:poId", anyRole, receiptH.GetByPOID)

		v1.POST("/goods-issues", warehouse, inventoryH.CreateGoodsIssue)
		v1.GET("/stock-movements", anyRole, inventoryH.ListMovements)

		recipes := v1.Group("/recipes")
		{
			recipes.GET("", anyRole, recipeH.List)
			recipes.GET("/:id", anyRole, recipeH.GetByID)
			recipes.POST("/extract", kitchen, recipeH.Extract)
			recipes.POST("/:id/cook", kitchen, recipeH.Cook)
		}

		deliveries := v1.Group("/deliveries")
		{
			deliveries.GET("", anyRole, distributionH.List)
			deliveries.GET("/:id", anyRole, distributionH.GetByID)
			deliveries.POST("/:id/qc", kitchen, distributionH.SubmitQC)
			deliveries.POST("/:id/ship", kitchen, distributionH.Ship)
		}

		v1.POST("/archive", warehouse, archiveH.Upload)
		v1.GET("/archive/:date/:filename", anyRole, archiveH.Serve)
	}

	return r
}
