package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 定义任务类型常量
const (
	TypeOrderConfirmation = "order:confirmation_email" // 订单确认邮件任务类型
)

// OrderConfirmationPayload 定义了订单确认邮件任务的数据结构。
// 只携带 Worker 端需要的字段，不嵌整个订单对象。
type OrderConfirmationPayload struct {
	OrderID     uint   `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Email       string `json:"email"`
	Total       string `json:"total"` // decimal 以字符串传递，避免 JSON 浮点误差
}

// NewOrderConfirmationTask 创建一个新的订单确认邮件任务
func NewOrderConfirmationTask(payload OrderConfirmationPayload) (*asynq.Task, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeOrderConfirmation, payloadBytes), nil
}
