package msgfmt

import (
	"fmt"

	"github.com/AidarKhafizov/prayer-notify-service/internal/consts"
	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
)

// Render — текст уведомления для триггера. Неизвестный тип триггера
// отдаёт его ключ, чтобы рассылка не падала молча.
func Render(t domain.Trigger) string {
	switch tr := t.(type) {
	case domain.PrayerTrigger:
		return FormatPrayerReminder(tr)
	case domain.EventTrigger:
		return FormatEventReminder(tr.Event)
	default:
		return t.Key()
	}
}

// FormatPrayerReminder — короткое сообщение о наступлении времени намаза
func FormatPrayerReminder(t domain.PrayerTrigger) string {
	return fmt.Sprintf("🕌 Время намаза %s в г. %s!",
		consts.PrayerDisplayName(t.Prayer),
		t.City,
	)
}

// FormatEventReminder — карточка-напоминание о мероприятии (Markdown)
func FormatEventReminder(e domain.Event) string {
	location := e.Location
	if location == "" {
		location = "Не указано"
	}
	return fmt.Sprintf(
		"🎪 *Напоминание о мероприятии*\n\nНазвание: *%s*\nДата и время: %s\nМесто: %s\n\nМероприятие скоро начнётся!",
		e.Title,
		e.StartTime.Format("02.01.2006 15:04"),
		location,
	)
}
