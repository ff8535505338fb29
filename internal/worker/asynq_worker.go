package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vibe-cart/internal/constants"
	"github.com/vibe-cart/internal/logger"
	"github.com/vibe-cart/internal/provider"
	"github.com/vibe-cart/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmed, c.handleOrderConfirmed)
}

func (c *Consumer) handleOrderConfirmed(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmed_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.OrderID) == "" {
		logger.Debugw("worker_order_confirmed_skip_invalid_payload")
		return nil
	}
	if isPlaceholderReceiver(payload.CustomerEmail) {
		logger.Debugw("worker_order_confirmed_skip_placeholder_receiver", "order_id", payload.OrderID)
		return nil
	}
	logger.Infow("worker_order_confirmed",
		"order_id", payload.OrderID,
		"receiver", payload.CustomerEmail,
		"summary", formatConfirmationSummary(payload),
	)
	return nil
}

func isPlaceholderReceiver(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return true
	}
	return strings.EqualFold(trimmed, constants.DefaultCustomerEmail)
}

func formatConfirmationSummary(payload queue.OrderConfirmedPayload) string {
	return fmt.Sprintf("order %s confirmed: %d item(s), total %s", payload.OrderID, payload.ItemCount, payload.GrandTotal)
}
