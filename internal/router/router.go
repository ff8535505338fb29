package router

import (
	"fmt"
	"strings"

	"github.com/vibe-cart/internal/cache"
	"github.com/vibe-cart/internal/config"
	publichandlers "github.com/vibe-cart/internal/http/handlers/public"
	"github.com/vibe-cart/internal/logger"
	"github.com/vibe-cart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "vc"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Checkout.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Checkout.RateLimit.MaxRequests,
		BlockSeconds:  cfg.Checkout.RateLimit.BlockSeconds,
		MessageKey:    "error.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/health", publicHandler.Health)
		apiV1.GET("/products", publicHandler.GetProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)

		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("", publicHandler.AddCartItem)
			cart.PUT("/:product_id", publicHandler.UpdateCartItem)
			cart.DELETE("/:product_id", publicHandler.DeleteCartItem)
		}

		apiV1.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyByIPAndJSONField("sessionId")), publicHandler.Checkout)
	}

	return r
}
