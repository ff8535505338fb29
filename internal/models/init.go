package models

import (
	"github.com/vibe-cart/internal/logger"

	"github.com/shopspring/decimal"
)

// DefaultProducts 返回默认演示商品目录
func DefaultProducts() []Product {
	return []Product{
		{
			Name:        "Wireless Headphones",
			PriceAmount: NewMoneyFromDecimal(decimal.RequireFromString("79.99")),
			Image:       "https://picsum.photos/seed/headphones/400/300",
			Category:    "Electronics",
			Description: "Over-ear wireless headphones with noise cancellation",
			IsActive:    true,
			SortOrder:   80,
		},
		{
			Name:        "Smart Watch",
			PriceAmount: NewMoneyFromDecimal(decimal.RequireFromString("199.99")),
			Image:       "https://picsum.photos/seed/smartwatch/400/300",
			Category:    "Electronics",
			Description: "Fitness tracking smart watch with heart rate monitor",
			IsActive:    true,
			SortOrder:   70,
		},
		{
			Name:        "Mechanical Keyboard",
			PriceAmount: NewMoneyFromDecimal(decimal.RequireFromString("129.99")),
			Image:       "https://picsum.photos/seed/keyboard/400/300",
			Category:    "Electronics",
			Description: "RGB mechanical keyboard with hot-swappable switches",
			IsActive:    true,
			SortOrder:   60,
		},
		{
			Name:        "Laptop Backpack",
			PriceAmount: NewMoneyFromDecimal(decimal.RequireFromString("49.99")),
			Image:       "https://picsum.photos/seed/backpack/400/300",
			Category:    "Accessories",
			Description: "Water-resistant backpack with padded laptop compartment",
			IsActive:    true,
			SortOrder:   50,
		},
		{
			Name:        "USB-C Hub",
			PriceAmount: NewMoneyFromDecimal(decimal.RequireFromString("34.99")),
			Image:       "https://picsum.photos/seed/usbhub/400/300",
			Category:    "Accessories",
			Description: "7-in-1 USB-C hub with HDMI and card reader",
			IsActive:    true,
			SortOrder:   40,
		},
		{
			Name:        "Desk Lamp",
			PriceAmount: NewMoneyFromDecimal(decimal.RequireFromString("24.99")),
			Image:       "https://picsum.photos/seed/desklamp/400/300",
			Category:    "Home",
			Description: "LED desk lamp with adjustable color temperature",
			IsActive:    true,
			SortOrder:   30,
		},
		{
			Name:        "Ceramic Mug",
			PriceAmount: NewMoneyFromDecimal(decimal.RequireFromString("9.99")),
			Image:       "https://picsum.photos/seed/mug/400/300",
			Category:    "Home",
			Description: "12oz ceramic mug with matte finish",
			IsActive:    true,
			SortOrder:   20,
		},
		{
			Name:        "Notebook Set",
			PriceAmount: NewMoneyFromDecimal(decimal.RequireFromString("14.99")),
			Image:       "https://picsum.photos/seed/notebook/400/300",
			Category:    "Stationery",
			Description: "Set of 3 dotted notebooks, A5 size",
			IsActive:    true,
			SortOrder:   10,
		},
	}
}

// SeedDefaultProducts 目录为空时写入默认商品
func SeedDefaultProducts() error {
	var count int64
	if err := DB.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, product := range DefaultProducts() {
		p := product
		if err := DB.Create(&p).Error; err != nil {
			return err
		}
	}
	logger.Infow("default_products_seeded", "count", len(DefaultProducts()))
	return nil
}
