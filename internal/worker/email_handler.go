package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/pathmanaban666/primecart/internal/service"
	"github.com/pathmanaban666/primecart/internal/tasks"
)

// OrderEmailHandler 处理订单确认邮件任务
type OrderEmailHandler struct {
	email service.EmailSender
}

// NewOrderEmailHandler 创建 Handler 实例
func NewOrderEmailHandler(email service.EmailSender) *OrderEmailHandler {
	return &OrderEmailHandler{email: email}
}

// ProcessTask 实现 asynq.Handler 接口
func (h *OrderEmailHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	currentRetry, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)

	logCtx := logrus.WithFields(logrus.Fields{
		"task_type": t.Type(),
		"retry":     currentRetry,
		"max_retry": maxRetry,
	})
	logCtx.Info("Processing order confirmation email task...")

	var payload tasks.OrderConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logCtx.WithError(err).Error("Failed to unmarshal task payload")
		// payload 损坏重试也不会成功
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	subject := fmt.Sprintf("Order confirmation #%s", payload.OrderNumber)
	body := fmt.Sprintf("Thanks! Your order %s with a total of %s has been confirmed.",
		payload.OrderNumber, payload.Total)
	if err := h.email.Send(payload.Email, subject, body); err != nil {
		logCtx.WithError(err).Errorf("Failed to send confirmation email for order %d", payload.OrderID)
		return fmt.Errorf("failed to send confirmation email for order %d: %w", payload.OrderID, err)
	}

	logCtx.WithField("order_id", payload.OrderID).Info("Order confirmation email task processed successfully")
	return nil
}
