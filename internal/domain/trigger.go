package domain

import (
	"fmt"
	"time"
)

// Trigger — эфемерное событие рассылки, живёт в пределах одного тика.
// Key используется в логах, метриках и при записи исходов доставки.
type Trigger interface {
	Key() string
}

// PrayerTrigger — наступило время намаза в конкретном городе
type PrayerTrigger struct {
	City     string
	Prayer   Prayer
	FireTime time.Time
}

func (t PrayerTrigger) Key() string {
	return fmt.Sprintf("prayer:%s:%s:%s", t.City, t.Prayer, t.FireTime.Format("2006-01-02"))
}

// EventTrigger — мероприятие попало в окно напоминаний часового тика
type EventTrigger struct {
	Event    Event
	FireTime time.Time
}

func (t EventTrigger) Key() string {
	// Час тика входит в ключ: без дедупликации одно мероприятие
	// напоминается на каждом подходящем часовом тике
	return fmt.Sprintf("event:%d:%s", t.Event.ID, t.FireTime.Format("2006-01-02T15"))
}
