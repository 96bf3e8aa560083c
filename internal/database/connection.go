package database

import (
	"fmt"

	"shop_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Inventory{},
		&models.CartItem{},
		&models.Coupon{},
		&models.Checkout{},
		&models.CheckoutItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Wishlist{},
		&models.Review{},
		&models.Referral{},
		&models.Notification{},
		&models.ReturnRequest{},
		&models.Invoice{},
	)
}
