package queue

import (
	"encoding/json"

	"github.com/vibe-cart/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmed 订单确认通知任务
	TaskOrderConfirmed = constants.TaskOrderConfirmed
)

// OrderConfirmedPayload 订单确认任务载荷
type OrderConfirmedPayload struct {
	OrderID       string `json:"order_id"`
	SessionID     string `json:"session_id"`
	CustomerEmail string `json:"customer_email"`
	GrandTotal    string `json:"grand_total"`
	ItemCount     int    `json:"item_count"`
}

// NewOrderConfirmedTask 创建订单确认任务
func NewOrderConfirmedTask(payload OrderConfirmedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmed, body), nil
}
