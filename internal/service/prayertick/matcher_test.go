package prayertick_test

import (
	"testing"

	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	"github.com/AidarKhafizov/prayer-notify-service/internal/service/prayertick"
)

// По-намазный тумблер уважается даже при включённом глобальном:
// выключенный notify_fajr исключает пользователя из рассылки Фаджра
func TestMatchPrayer_RespectsPerPrayerToggle(t *testing.T) {
	t.Parallel()

	subs := []domain.Subscriber{
		subscriber(1, "Hanafi", nil),
		subscriber(2, "Hanafi", map[domain.Prayer]bool{domain.PrayerFajr: false}),
		subscriber(3, "Shafi", map[domain.Prayer]bool{domain.PrayerIsha: false}),
	}

	got := prayertick.MatchPrayer(subs, domain.PrayerFajr)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Fajr recipients: expected [1 3], got %v", got)
	}

	got = prayertick.MatchPrayer(subs, domain.PrayerIsha)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Isha recipients: expected [1 2], got %v", got)
	}
}

func TestMatchPrayer_EmptySnapshot(t *testing.T) {
	t.Parallel()

	if got := prayertick.MatchPrayer(nil, domain.PrayerFajr); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
