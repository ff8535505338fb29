package service

import (
	"errors"
	"testing"

	"github.com/vibe-cart/internal/models"
	"github.com/vibe-cart/internal/repository"
	"github.com/vibe-cart/internal/session"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCartTestRepo(t *testing.T) repository.ProductRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate product failed: %v", err)
	}
	return repository.NewProductRepository(db)
}

func mustCreateProduct(t *testing.T, repo repository.ProductRepository, id uint, name, price string, active bool) {
	t.Helper()
	amount, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{
		ID:          id,
		Name:        name,
		PriceAmount: models.NewMoneyFromDecimal(amount),
		Category:    "Test",
		IsActive:    active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
}

func TestCartServiceAddItemUnknownProduct(t *testing.T) {
	repo := newCartTestRepo(t)
	svc := NewCartService(session.NewStore(), repo)

	_, err := svc.AddItem("s-1", 424242, 1)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartServiceAddItemInactiveProduct(t *testing.T) {
	repo := newCartTestRepo(t)
	mustCreateProduct(t, repo, 31001, "Retired Gadget", "10.00", false)
	svc := NewCartService(session.NewStore(), repo)

	_, err := svc.AddItem("s-1", 31001, 1)
	if !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
}

func TestCartServiceAddItemBlankSession(t *testing.T) {
	repo := newCartTestRepo(t)
	svc := NewCartService(session.NewStore(), repo)

	_, err := svc.AddItem("   ", 1, 1)
	if !errors.Is(err, ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
}

func TestCartServiceAddItemAndSnapshot(t *testing.T) {
	repo := newCartTestRepo(t)
	mustCreateProduct(t, repo, 31002, "Phone Case", "9.99", true)
	sessions := session.NewStore()
	svc := NewCartService(sessions, repo)

	snap, err := svc.AddItem("s-add", 31002, 3)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if snap.Total != "29.97" {
		t.Fatalf("expected total 29.97, got %s", snap.Total)
	}
	if snap.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", snap.ItemCount)
	}
}

func TestCartServiceFailedAddLeavesCartUntouched(t *testing.T) {
	repo := newCartTestRepo(t)
	mustCreateProduct(t, repo, 31003, "Coffee Mug", "11.99", true)
	sessions := session.NewStore()
	svc := NewCartService(sessions, repo)

	if _, err := svc.AddItem("s-keep", 31003, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := svc.AddItem("s-keep", 909090, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	snap := svc.GetCart("s-keep")
	if snap.ItemCount != 1 || snap.Total != "11.99" {
		t.Fatalf("expected cart untouched, got count %d total %s", snap.ItemCount, snap.Total)
	}
}

func TestCartServiceGetCartBlankSessionReturnsEmpty(t *testing.T) {
	repo := newCartTestRepo(t)
	svc := NewCartService(session.NewStore(), repo)

	snap := svc.GetCart("")
	if len(snap.Items) != 0 || snap.Total != "0.00" || snap.ItemCount != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestCartServiceUpdateQuantityValidation(t *testing.T) {
	repo := newCartTestRepo(t)
	mustCreateProduct(t, repo, 31004, "Desk Lamp", "34.99", true)
	sessions := session.NewStore()
	svc := NewCartService(sessions, repo)

	if _, err := svc.AddItem("s-upd", 31004, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	if _, err := svc.UpdateQuantity("s-upd", 31004, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for zero quantity, got %v", err)
	}
	if _, err := svc.UpdateQuantity("s-upd", 31004, -2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for negative quantity, got %v", err)
	}

	snap, err := svc.UpdateQuantity("s-upd", 31004, 5)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if snap.ItemCount != 5 {
		t.Fatalf("expected item count 5, got %d", snap.ItemCount)
	}
}

func TestCartServiceRemoveItemMissingIsNoop(t *testing.T) {
	repo := newCartTestRepo(t)
	mustCreateProduct(t, repo, 31005, "Water Bottle", "19.99", true)
	sessions := session.NewStore()
	svc := NewCartService(sessions, repo)

	if _, err := svc.AddItem("s-del", 31005, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	snap, err := svc.RemoveItem("s-del", 777777)
	if err != nil {
		t.Fatalf("remove missing item should succeed, got %v", err)
	}
	if snap.ItemCount != 1 {
		t.Fatalf("expected 1 item after no-op removal, got %d", snap.ItemCount)
	}
}
