package session

import (
	"sync"
	"testing"
)

func TestStoreGetOrCreateLazy(t *testing.T) {
	store := NewStore()
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d sessions", store.Len())
	}

	cart := store.GetOrCreate("s-1")
	if cart == nil {
		t.Fatalf("expected cart to be created")
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", store.Len())
	}
}

func TestStoreGetOrCreateReturnsSameCart(t *testing.T) {
	store := NewStore()
	first := store.GetOrCreate("s-1")
	second := store.GetOrCreate("s-1")
	if first != second {
		t.Fatalf("expected same cart pointer for same session")
	}
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	store := NewStore()
	a := store.GetOrCreate("s-a")
	b := store.GetOrCreate("s-b")
	if a == b {
		t.Fatalf("expected distinct carts per session")
	}
}

func TestStoreGetDoesNotCreate(t *testing.T) {
	store := NewStore()
	if _, ok := store.Get("missing"); ok {
		t.Fatalf("expected miss for unknown session")
	}
	if store.Len() != 0 {
		t.Fatalf("expected Get to not create sessions, got %d", store.Len())
	}
}

func TestStoreConcurrentGetOrCreate(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	carts := make([]interface{}, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			carts[idx] = store.GetOrCreate("shared")
		}(i)
	}
	wg.Wait()

	if store.Len() != 1 {
		t.Fatalf("expected single session, got %d", store.Len())
	}
	for i := 1; i < len(carts); i++ {
		if carts[i] != carts[0] {
			t.Fatalf("expected all goroutines to receive the same cart")
		}
	}
}
