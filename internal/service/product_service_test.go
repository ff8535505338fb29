package service

import (
	"context"
	"errors"
	"testing"
)

func TestProductServiceGetByIDMissing(t *testing.T) {
	repo := newCartTestRepo(t)
	svc := NewProductService(repo, 0)

	if _, err := svc.GetByID(515151); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductServiceGetByIDInactive(t *testing.T) {
	repo := newCartTestRepo(t)
	mustCreateProduct(t, repo, 41001, "Retired Lamp", "34.99", false)
	svc := NewProductService(repo, 0)

	if _, err := svc.GetByID(41001); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
}

func TestProductServiceGetByIDActive(t *testing.T) {
	repo := newCartTestRepo(t)
	mustCreateProduct(t, repo, 41002, "Desk Lamp", "34.99", true)
	svc := NewProductService(repo, 0)

	product, err := svc.GetByID(41002)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product.Name != "Desk Lamp" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestProductServiceListWithoutCache(t *testing.T) {
	repo := newCartTestRepo(t)
	mustCreateProduct(t, repo, 41003, "Cached Gadget", "5.00", true)
	svc := NewProductService(repo, 60)

	products, err := svc.List(context.Background(), "Test")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	found := false
	for _, p := range products {
		if p.Name == "Cached Gadget" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected seeded product in list, got %d products", len(products))
	}
}
