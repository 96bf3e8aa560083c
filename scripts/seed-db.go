package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shop_backend/internal/config"
	"shop_backend/internal/database"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
	"shop_backend/internal/services"
)

func main() {
	fmt.Println("Seeding database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	seedAdmin(db)
	seedProducts(db)
	seedCoupons(db)

	fmt.Println("Seeding complete")
}

func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)

	if existing, err := userRepo.GetByEmail("admin@shop.local"); err == nil && existing != nil {
		fmt.Println("Admin user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	admin := &models.User{
		Username:     "admin",
		Email:        "admin@shop.local",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	fmt.Println("Admin user created")
	fmt.Println("Email: admin@shop.local")
	fmt.Println("Password: admin123")
}

func seedProducts(db *gorm.DB) {
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	productService := services.NewProductService(repository.NewTxManager(db), productRepo, inventoryRepo, nil, zap.NewNop())

	if existing, err := productRepo.GetAll(""); err == nil && len(existing) > 0 {
		fmt.Println("Products already seeded")
		return
	}

	products := []models.Product{
		{
			Name:        "Classic Cotton T-Shirt",
			Price:       decimal.NewFromFloat(19.99),
			Size:        "M",
			Color:       "white",
			Category:    string(models.CategoryUnisex),
			Description: "Everyday crew-neck tee in combed cotton.",
			Stock:       50,
		},
		{
			Name:        "Slim Fit Denim Jeans",
			Price:       decimal.NewFromFloat(59.99),
			Size:        "32",
			Color:       "indigo",
			Category:    string(models.CategoryMen),
			Description: "Stretch denim with a tapered leg.",
			Stock:       30,
		},
		{
			Name:        "Floral Summer Dress",
			Price:       decimal.NewFromFloat(45.50),
			Size:        "S",
			Color:       "yellow",
			Category:    string(models.CategoryWomen),
			Description: "Lightweight viscose dress with floral print.",
			Stock:       20,
		},
		{
			Name:        "Kids Hooded Sweatshirt",
			Price:       decimal.NewFromFloat(24.00),
			Size:        "8Y",
			Color:       "navy",
			Category:    string(models.CategoryKids),
			Description: "Fleece-lined hoodie with kangaroo pocket.",
			Stock:       40,
		},
	}

	for i := range products {
		if err := productService.CreateProduct(&products[i]); err != nil {
			log.Printf("Warning: Failed to seed product %q: %v", products[i].Name, err)
		}
	}
	fmt.Printf("Seeded %d products\n", len(products))
}

func seedCoupons(db *gorm.DB) {
	couponRepo := repository.NewCouponRepository(db)

	if _, err := couponRepo.GetActiveByCode("SAVE10"); err == nil {
		fmt.Println("Coupons already seeded")
		return
	}

	coupon := &models.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: decimal.NewFromInt(10),
		MinOrderAmount:     decimal.NewFromInt(100),
		IsActive:           true,
	}
	if err := couponRepo.Create(coupon); err != nil {
		log.Printf("Warning: Failed to seed coupon: %v", err)
		return
	}
	fmt.Println("Seeded coupon SAVE10 (10% off orders over 100)")
}
