package service

import (
	"strings"

	"github.com/vibe-cart/internal/models"
	"github.com/vibe-cart/internal/repository"
	"github.com/vibe-cart/internal/session"
)

// CartService 购物车业务服务
type CartService struct {
	sessions *session.Store
	repo     repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(sessions *session.Store, repo repository.ProductRepository) *CartService {
	return &CartService{sessions: sessions, repo: repo}
}

// GetCart 获取会话购物车快照，会话为空或不存在时返回空购物车
func (s *CartService) GetCart(sessionID string) models.CartSnapshot {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return models.EmptyCartSnapshot()
	}
	cart, ok := s.sessions.Get(sessionID)
	if !ok {
		return models.EmptyCartSnapshot()
	}
	return cart.Snapshot()
}

// AddItem 向会话购物车添加商品，quantity 为带符号增量
func (s *CartService) AddItem(sessionID string, productID uint, quantity int) (models.CartSnapshot, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return models.CartSnapshot{}, ErrSessionRequired
	}

	// 先校验商品，再触碰购物车
	product, err := s.repo.GetByID(productID)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	if product == nil {
		return models.CartSnapshot{}, ErrProductNotFound
	}
	if !product.IsActive {
		return models.CartSnapshot{}, ErrProductNotAvailable
	}

	cart := s.sessions.GetOrCreate(sessionID)
	cart.AddItem(product, quantity)
	return cart.Snapshot(), nil
}

// RemoveItem 从会话购物车移除商品，商品不存在时静默成功
func (s *CartService) RemoveItem(sessionID string, productID uint) (models.CartSnapshot, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return models.CartSnapshot{}, ErrSessionRequired
	}
	cart := s.sessions.GetOrCreate(sessionID)
	cart.RemoveItem(productID)
	return cart.Snapshot(), nil
}

// UpdateQuantity 覆盖式更新商品数量，数量必须大于等于 1
func (s *CartService) UpdateQuantity(sessionID string, productID uint, quantity int) (models.CartSnapshot, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return models.CartSnapshot{}, ErrSessionRequired
	}
	if quantity < 1 {
		return models.CartSnapshot{}, ErrInvalidQuantity
	}
	cart := s.sessions.GetOrCreate(sessionID)
	cart.UpdateQuantity(productID, quantity)
	return cart.Snapshot(), nil
}
