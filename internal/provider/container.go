package provider

import (
	"github.com/vibe-cart/internal/cache"
	"github.com/vibe-cart/internal/config"
	"github.com/vibe-cart/internal/constants"
	"github.com/vibe-cart/internal/logger"
	"github.com/vibe-cart/internal/models"
	"github.com/vibe-cart/internal/queue"
	"github.com/vibe-cart/internal/repository"
	"github.com/vibe-cart/internal/service"
	"github.com/vibe-cart/internal/session"

	"github.com/shopspring/decimal"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo repository.ProductRepository

	// 会话购物车存储
	Sessions *session.Store

	// Services
	ProductService  *service.ProductService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Sessions:    session.NewStore(),
	}

	c.initRepositories()
	c.initServices()

	return c
}

// Close 释放容器持有的外部连接（队列客户端、Redis 缓存）
func (c *Container) Close() {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_failed", "error", err)
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_cache_failed", "error", err)
	}
}

func (c *Container) initRepositories() {
	c.ProductRepo = repository.NewProductRepository(models.DB)
}

func (c *Container) initServices() {
	taxRate, err := decimal.NewFromString(c.Config.Checkout.TaxRate)
	if err != nil {
		logger.Warnw("provider_tax_rate_invalid", "value", c.Config.Checkout.TaxRate, "error", err)
		taxRate, _ = decimal.NewFromString(constants.DefaultTaxRate)
	}

	c.ProductService = service.NewProductService(c.ProductRepo, c.Config.Catalog.CacheTTLSeconds)
	c.CartService = service.NewCartService(c.Sessions, c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(c.Sessions, c.QueueClient, taxRate)
}
