package public

import (
	"strings"

	"github.com/vibe-cart/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AddCartItemRequest 加购请求，quantity 为带符号增量，缺省为 1
type AddCartItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity"`
	SessionID string `json:"sessionId"`
}

// UpdateCartItemRequest 覆盖式数量更新请求
type UpdateCartItemRequest struct {
	Quantity  *int   `json:"quantity" binding:"required"`
	SessionID string `json:"sessionId"`
}

// RemoveCartItemRequest 移除购物车项请求体（sessionId 也可放在 query）
type RemoveCartItemRequest struct {
	SessionID string `json:"sessionId"`
}

// GetCart 获取会话购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("sessionId"))
	snapshot := h.CartService.GetCart(sessionID)
	response.Success(c, gin.H{
		"cart":      snapshot,
		"sessionId": sessionID,
	})
}

// AddCartItem 向购物车添加商品，未携带会话时生成新会话
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	snapshot, err := h.CartService.AddItem(sessionID, req.ProductID, quantity)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, gin.H{
		"cart":      snapshot,
		"sessionId": sessionID,
	})
}

// UpdateCartItem 覆盖商品数量，数量必须大于等于 1
func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, ok := parseProductIDParam(c, "product_id")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		respondError(c, response.CodeBadRequest, "error.session_required", nil)
		return
	}

	snapshot, err := h.CartService.UpdateQuantity(sessionID, productID, *req.Quantity)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, gin.H{
		"cart":      snapshot,
		"sessionId": sessionID,
	})
}

// DeleteCartItem 移除购物车项，sessionId 取自 query 或请求体
func (h *Handler) DeleteCartItem(c *gin.Context) {
	productID, ok := parseProductIDParam(c, "product_id")
	if !ok {
		return
	}

	sessionID := strings.TrimSpace(c.Query("sessionId"))
	if sessionID == "" {
		var req RemoveCartItemRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			sessionID = strings.TrimSpace(req.SessionID)
		}
	}
	if sessionID == "" {
		respondError(c, response.CodeBadRequest, "error.session_required", nil)
		return
	}

	snapshot, err := h.CartService.RemoveItem(sessionID, productID)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}

	response.Success(c, gin.H{
		"cart":      snapshot,
		"sessionId": sessionID,
	})
}
