package service

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/vibe-cart/internal/constants"
	"github.com/vibe-cart/internal/logger"
	"github.com/vibe-cart/internal/models"
	"github.com/vibe-cart/internal/queue"
	"github.com/vibe-cart/internal/session"

	"github.com/shopspring/decimal"
)

const orderIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CheckoutService 结算业务服务
type CheckoutService struct {
	sessions    *session.Store
	queueClient *queue.Client
	taxRate     decimal.Decimal
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(sessions *session.Store, queueClient *queue.Client, taxRate decimal.Decimal) *CheckoutService {
	return &CheckoutService{
		sessions:    sessions,
		queueClient: queueClient,
		taxRate:     taxRate,
	}
}

// CheckoutCustomerInput 结算客户信息输入
type CheckoutCustomerInput struct {
	Name  string
	Email string
}

// Checkout 结算会话购物车并生成收据，成功后购物车被清空
func (s *CheckoutService) Checkout(sessionID string, customer CheckoutCustomerInput) (*models.Receipt, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	cart := s.sessions.GetOrCreate(sessionID)
	items, subtotal, ok := cart.Settle()
	if !ok {
		return nil, ErrCartEmpty
	}

	tax := subtotal.Mul(s.taxRate)
	grand := subtotal.Add(tax)

	name := strings.TrimSpace(customer.Name)
	if name == "" {
		name = constants.DefaultCustomerName
	}
	email := strings.TrimSpace(customer.Email)
	if email == "" {
		email = constants.DefaultCustomerEmail
	}

	receipt := &models.Receipt{
		OrderID: generateOrderID(),
		Customer: models.ReceiptCustomer{
			Name:  name,
			Email: email,
		},
		Items:      items,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      grand,
		GrandTotal: grand,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Status:     constants.ReceiptStatusConfirmed,
	}

	itemCount := 0
	for _, item := range items {
		itemCount += item.Quantity
	}
	if err := s.queueClient.EnqueueOrderConfirmed(queue.OrderConfirmedPayload{
		OrderID:       receipt.OrderID,
		SessionID:     sessionID,
		CustomerEmail: email,
		GrandTotal:    grand.String(),
		ItemCount:     itemCount,
	}); err != nil {
		logger.Warnw("订单确认任务入队失败", "order_id", receipt.OrderID, "error", err)
	}

	return receipt, nil
}

func generateOrderID() string {
	var b strings.Builder
	max := big.NewInt(int64(len(orderIDCharset)))
	for i := 0; i < constants.OrderIDLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			b.WriteByte(orderIDCharset[0])
			continue
		}
		b.WriteByte(orderIDCharset[n.Int64()])
	}
	return b.String()
}
