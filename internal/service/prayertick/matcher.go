package prayertick

import "github.com/AidarKhafizov/prayer-notify-service/internal/domain"

// MatchPrayer — получатели триггера: подписчики снимка с включённым
// тумблером конкретного намаза. Чистая фильтрация без побочных эффектов;
// глобальный тумблер уже применён при построении снимка.
func MatchPrayer(subs []domain.Subscriber, p domain.Prayer) []int64 {
	var out []int64
	for _, s := range subs {
		if s.Wants(p) {
			out = append(out, s.UserID)
		}
	}
	return out
}
