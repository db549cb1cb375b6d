package msgfmt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	"github.com/AidarKhafizov/prayer-notify-service/internal/pkg/msgfmt"
)

func TestFormatPrayerReminder(t *testing.T) {
	t.Parallel()

	got := msgfmt.FormatPrayerReminder(domain.PrayerTrigger{
		City:   "Ufa",
		Prayer: domain.PrayerMaghrib,
	})
	if got != "🕌 Время намаза Магриб в г. Ufa!" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestFormatEventReminder(t *testing.T) {
	t.Parallel()

	got := msgfmt.FormatEventReminder(domain.Event{
		Title:     "Ифтар в мечети",
		StartTime: time.Date(2026, 8, 29, 19, 30, 0, 0, time.UTC),
		Location:  "Казань",
	})
	for _, want := range []string{"*Ифтар в мечети*", "29.08.2026 19:30", "Казань"} {
		if !strings.Contains(got, want) {
			t.Errorf("message misses %q:\n%s", want, got)
		}
	}
}

// Пустое место проведения подменяется заглушкой
func TestFormatEventReminder_NoLocation(t *testing.T) {
	t.Parallel()

	got := msgfmt.FormatEventReminder(domain.Event{
		Title:     "Лекция",
		StartTime: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	})
	if !strings.Contains(got, "Не указано") {
		t.Errorf("expected placeholder location:\n%s", got)
	}
}

func TestRender_DispatchesByTriggerType(t *testing.T) {
	t.Parallel()

	pt := domain.PrayerTrigger{City: "Ufa", Prayer: domain.PrayerFajr, FireTime: time.Date(2026, 8, 28, 5, 32, 0, 0, time.UTC)}
	if msgfmt.Render(pt) != msgfmt.FormatPrayerReminder(pt) {
		t.Error("Render must delegate prayer triggers to FormatPrayerReminder")
	}

	et := domain.EventTrigger{Event: domain.Event{Title: "Лекция", StartTime: pt.FireTime}}
	if msgfmt.Render(et) != msgfmt.FormatEventReminder(et.Event) {
		t.Error("Render must delegate event triggers to FormatEventReminder")
	}
}
