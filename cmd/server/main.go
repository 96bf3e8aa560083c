package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shop_backend/internal/cache"
	"shop_backend/internal/config"
	"shop_backend/internal/database"
	"shop_backend/internal/handlers"
	"shop_backend/internal/logger"
	"shop_backend/internal/middleware"
	"shop_backend/internal/repository"
	"shop_backend/internal/services"
	"shop_backend/pkg/mailer"
	"shop_backend/pkg/pdfgen"
	"shop_backend/pkg/razorpay"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.Initialize(cfg.Environment)
	defer log.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize Redis product cache. The service layer tolerates a nil
	// cache, so a missing Redis only costs read-through performance.
	cacheClient, err := cache.Initialize(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		log.Warn("Redis unavailable, product cache disabled", zap.Error(err))
		cacheClient = nil
	}

	if err := os.MkdirAll(cfg.InvoiceDir, 0o755); err != nil {
		log.Fatal("Failed to create invoice directory", zap.Error(err))
	}

	// Initialize external clients
	gateway := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	mail := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	renderer := pdfgen.NewWkhtmltopdfRenderer()

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	cartRepo := repository.NewCartRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, referralRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(txManager, productRepo, inventoryRepo, cacheClient, log)
	cartService := services.NewCartService(cartRepo, productRepo)
	couponService := services.NewCouponService(couponRepo)
	checkoutService := services.NewCheckoutService(cartRepo, checkoutRepo, couponService)
	orderService := services.NewOrderService(txManager, cartRepo, inventoryRepo, orderRepo, couponService)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, userRepo, notificationRepo, gateway, mail, log)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo)
	reviewService := services.NewReviewService(reviewRepo, productRepo)
	referralService := services.NewReferralService(referralRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	returnService := services.NewReturnService(returnRepo, orderRepo, log)
	inventoryService := services.NewInventoryService(inventoryRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, orderRepo, renderer, mail, cfg.InvoiceDir)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	couponHandler := handlers.NewCouponHandler(couponService)
	orderHandler := handlers.NewOrderHandler(orderService, checkoutService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	referralHandler := handlers.NewReferralHandler(referralService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	returnHandler := handlers.NewReturnHandler(returnService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)

	// Setup routes
	router := gin.New()
	router.Use(middleware.RequestLogger(log), middleware.Metrics(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.GET("/products/:id/reviews", reviewHandler.ListByProduct)
	}

	authed := router.Group("/api", middleware.RequireAuth(authService))
	{
		authed.GET("/me", authHandler.Me)

		authed.GET("/cart", cartHandler.List)
		authed.POST("/cart", cartHandler.Add)
		authed.DELETE("/cart/:id", cartHandler.Remove)

		authed.POST("/checkout", orderHandler.Checkout)
		authed.GET("/checkout", orderHandler.CheckoutHistory)

		authed.GET("/orders", orderHandler.List)
		authed.POST("/orders", orderHandler.Create)
		authed.GET("/orders/:id", orderHandler.Get)
		authed.POST("/orders/:id/apply-coupon", orderHandler.ApplyCoupon)

		authed.POST("/orders/:id/payment", paymentHandler.CreateIntent)
		authed.POST("/payments/verify", paymentHandler.Verify)

		authed.POST("/orders/:id/invoice", invoiceHandler.Generate)
		authed.GET("/orders/:id/invoice/download", invoiceHandler.Download)
		authed.POST("/orders/:id/invoice/email", invoiceHandler.SendEmail)

		authed.GET("/coupons", couponHandler.List)

		authed.GET("/wishlist", wishlistHandler.List)
		authed.POST("/wishlist", wishlistHandler.Add)
		authed.DELETE("/wishlist/:id", wishlistHandler.Remove)

		authed.POST("/products/:id/reviews", reviewHandler.Create)
		authed.PUT("/reviews/:id", reviewHandler.Update)
		authed.DELETE("/reviews/:id", reviewHandler.Delete)

		authed.GET("/referrals", referralHandler.List)
		authed.POST("/referrals", referralHandler.Create)
		authed.POST("/referrals/apply", referralHandler.Apply)

		authed.GET("/notifications", notificationHandler.List)
		authed.PUT("/notifications/:id/read", notificationHandler.MarkRead)

		authed.GET("/returns", returnHandler.List)
		authed.POST("/returns", returnHandler.Create)
	}

	admin := router.Group("/api/admin", middleware.RequireAuth(authService), middleware.RequireAdmin())
	{
		admin.GET("/users", authHandler.ListUsers)

		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)

		admin.POST("/coupons", couponHandler.Create)
		admin.DELETE("/coupons/:id", couponHandler.Deactivate)

		admin.GET("/orders", orderHandler.AdminList)
		admin.PUT("/orders/:id/status", orderHandler.AdminUpdateStatus)

		admin.PUT("/returns/:id", returnHandler.AdminUpdate)

		admin.GET("/inventory", inventoryHandler.List)
		admin.PUT("/inventory/:id", inventoryHandler.Update)
	}

	// Start server
	log.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
