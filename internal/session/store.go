package session

import (
	"sync"

	"github.com/vibe-cart/internal/models"
)

// Store 会话购物车存储，按 sessionId 维护各会话的购物车
type Store struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

// NewStore 创建会话存储
func NewStore() *Store {
	return &Store{carts: make(map[string]*models.Cart)}
}

// GetOrCreate 获取会话购物车，不存在时惰性创建
func (s *Store) GetOrCreate(sessionID string) *models.Cart {
	s.mu.RLock()
	cart, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return cart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}
	cart = models.NewCart()
	s.carts[sessionID] = cart
	return cart
}

// Get 获取会话购物车，不创建
func (s *Store) Get(sessionID string) (*models.Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[sessionID]
	return cart, ok
}

// Len 当前会话数量
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
