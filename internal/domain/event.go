package domain

import "time"

// EventStatus — статус мероприятия
type EventStatus string

const (
	EventActive    EventStatus = "active"
	EventCancelled EventStatus = "cancelled"
)

// Event - мероприятие сообщества
type Event struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	StartTime time.Time   `json:"start_time"`
	Location  string      `json:"location"`
	Status    EventStatus `json:"status"`
}
