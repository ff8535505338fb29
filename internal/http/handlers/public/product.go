package public

import (
	"errors"
	"time"

	"github.com/vibe-cart/internal/http/response"
	"github.com/vibe-cart/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 获取商品列表，支持 ?category= 过滤
func (h *Handler) GetProducts(c *gin.Context) {
	category := c.Query("category")

	products, err := h.ProductService.List(c.Request.Context(), category)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	response.Success(c, gin.H{"products": products})
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseProductIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.ProductService.GetByID(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		case errors.Is(err, service.ErrProductNotAvailable):
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"product": product})
}

// Health 健康检查，附带当前活跃会话数
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"sessions":  h.Sessions.Len(),
	})
}
