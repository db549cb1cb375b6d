package domain

import "time"

// DeliveryStatus — исход доставки уведомления одному получателю
type DeliveryStatus string

const (
	DeliverySent               DeliveryStatus = "sent"
	DeliverySkippedBlocked     DeliveryStatus = "skipped_blocked"
	DeliverySkippedDeactivated DeliveryStatus = "skipped_deactivated"
	DeliveryFailed             DeliveryStatus = "failed"
)

// DeliveryOutcome — результат одной попытки доставки (пользователь, триггер)
type DeliveryOutcome struct {
	UserID     int64          `json:"user_id"`
	TriggerKey string         `json:"trigger_key"`
	Status     DeliveryStatus `json:"status"`
	Timestamp  time.Time      `json:"timestamp"`
}
