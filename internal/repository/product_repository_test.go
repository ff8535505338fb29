package repository

import (
	"testing"

	"github.com/vibe-cart/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newProductRepo(t *testing.T) ProductRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductRepository(db)
}

func createTestProduct(t *testing.T, repo ProductRepository, id uint, name, category string, active bool, sortOrder int) {
	t.Helper()
	price, _ := decimal.NewFromString("10.00")
	if err := repo.Create(&models.Product{
		ID:          id,
		Name:        name,
		PriceAmount: models.NewMoneyFromDecimal(price),
		Category:    category,
		IsActive:    active,
		SortOrder:   sortOrder,
	}); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
}

func TestProductRepositoryCreateKeepsInactiveFlag(t *testing.T) {
	repo := newProductRepo(t)
	createTestProduct(t, repo, 61000, "Shelved Gadget", "CatInactive", false, 0)

	product, err := repo.GetByID(61000)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if product == nil {
		t.Fatalf("expected product to exist")
	}
	if product.IsActive {
		t.Fatalf("expected IsActive=false to survive the write path")
	}
}

func TestProductRepositoryGetByIDMissing(t *testing.T) {
	repo := newProductRepo(t)

	product, err := repo.GetByID(987654)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil for missing product, got %+v", product)
	}
}

func TestProductRepositoryListFiltersByCategory(t *testing.T) {
	repo := newProductRepo(t)
	createTestProduct(t, repo, 61001, "Gadget A", "CatFilterA", true, 0)
	createTestProduct(t, repo, 61002, "Gadget B", "CatFilterB", true, 0)

	products, err := repo.List(ProductListFilter{Category: "CatFilterA", OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Gadget A" {
		t.Fatalf("unexpected filter result: %+v", products)
	}
}

func TestProductRepositoryListOnlyActive(t *testing.T) {
	repo := newProductRepo(t)
	createTestProduct(t, repo, 61003, "Active Gadget", "CatActive", true, 0)
	createTestProduct(t, repo, 61004, "Retired Gadget", "CatActive", false, 0)

	products, err := repo.List(ProductListFilter{Category: "CatActive", OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Active Gadget" {
		t.Fatalf("expected only active product, got %+v", products)
	}
}

func TestProductRepositoryListSortOrder(t *testing.T) {
	repo := newProductRepo(t)
	createTestProduct(t, repo, 61005, "Low Priority", "CatSort", true, 0)
	createTestProduct(t, repo, 61006, "High Priority", "CatSort", true, 10)

	products, err := repo.List(ProductListFilter{Category: "CatSort", OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 || products[0].Name != "High Priority" {
		t.Fatalf("expected sort_order desc ordering, got %+v", products)
	}
}
