package service

import (
	"context"
	"strings"
	"time"

	"github.com/vibe-cart/internal/cache"
	"github.com/vibe-cart/internal/logger"
	"github.com/vibe-cart/internal/models"
	"github.com/vibe-cart/internal/repository"
)

const productListCacheKey = "products:active"

// ProductService 商品业务服务
type ProductService struct {
	repo     repository.ProductRepository
	cacheTTL time.Duration
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, cacheTTLSeconds int) *ProductService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProductService{repo: repo, cacheTTL: ttl}
}

// List 获取上架商品列表，可按分类过滤
func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {
	category = strings.TrimSpace(category)

	// 无过滤条件的全量列表走缓存
	if category == "" && cache.Enabled() {
		var cached []models.Product
		hit, err := cache.GetJSON(ctx, productListCacheKey, &cached)
		if err != nil {
			logger.Warnw("商品列表缓存读取失败", "error", err)
		} else if hit {
			return cached, nil
		}
	}

	products, err := s.repo.List(repository.ProductListFilter{
		Category:   category,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}

	if category == "" && cache.Enabled() {
		if err := cache.SetJSON(ctx, productListCacheKey, products, s.cacheTTL); err != nil {
			logger.Warnw("商品列表缓存写入失败", "error", err)
		}
	}
	return products, nil
}

// GetByID 获取上架商品详情
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}
	return product, nil
}
