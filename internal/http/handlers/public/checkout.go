package public

import (
	"strings"

	"github.com/vibe-cart/internal/http/response"
	"github.com/vibe-cart/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutCustomerRequest 结算客户信息
type CheckoutCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	SessionID string                   `json:"sessionId"`
	Customer  *CheckoutCustomerRequest `json:"customer"`
}

// Checkout 结算购物车并返回收据
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		respondError(c, response.CodeBadRequest, "error.session_required", nil)
		return
	}

	customer := service.CheckoutCustomerInput{}
	if req.Customer != nil {
		customer.Name = req.Customer.Name
		customer.Email = req.Customer.Email
	}

	receipt, err := h.CheckoutService.Checkout(sessionID, customer)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, gin.H{"receipt": receipt})
}
