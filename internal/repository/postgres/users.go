package postgres

import (
	"context"

	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo — читающий доступ к пользователям и их настройкам уведомлений.
// Движок уведомлений настройки не пишет, только читает.
type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// CitiesWithPrayerSubscribers — города, где есть хотя бы один пользователь
// с включённым глобальным тумблером и хотя бы одним включённым намазом.
func (r *UserRepo) CitiesWithPrayerSubscribers(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT u.city
	FROM users u
	JOIN settings s ON s.user_id = u.id
	WHERE u.city IS NOT NULL
	  AND u.city <> ''
	  AND s.prayer_notifications_on = TRUE
	  AND (s.notify_fajr OR s.notify_dhuhr OR s.notify_asr OR s.notify_maghrib OR s.notify_isha)`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

// PrayerSubscribers — снимок подписчиков города с включённым глобальным
// тумблером; по-намазные тумблеры фильтруются уже в памяти тика.
func (r *UserRepo) PrayerSubscribers(ctx context.Context, city string) ([]domain.Subscriber, error) {
	query := `
	SELECT u.telegram_id, COALESCE(s.madhab, ''),
	       s.notify_fajr, s.notify_dhuhr, s.notify_asr, s.notify_maghrib, s.notify_isha
	FROM users u
	JOIN settings s ON s.user_id = u.id
	WHERE u.city = $1
	  AND s.prayer_notifications_on = TRUE
	ORDER BY u.id`
	rows, err := r.db.Query(ctx, query, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscriber
	for rows.Next() {
		var (
			sub                             domain.Subscriber
			fajr, dhuhr, asr, maghrib, isha bool
		)
		if err := rows.Scan(&sub.UserID, &sub.Madhab, &fajr, &dhuhr, &asr, &maghrib, &isha); err != nil {
			return nil, err
		}
		sub.Prayers = map[domain.Prayer]bool{
			domain.PrayerFajr:    fajr,
			domain.PrayerDhuhr:   dhuhr,
			domain.PrayerAsr:     asr,
			domain.PrayerMaghrib: maghrib,
			domain.PrayerIsha:    isha,
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// EventSubscribers — подтверждённые регистранты мероприятия
// с включённым тумблером напоминаний.
func (r *UserRepo) EventSubscribers(ctx context.Context, eventID int64) ([]int64, error) {
	query := `
	SELECT u.telegram_id
	FROM event_registrations er
	JOIN users u ON u.id = er.user_id
	JOIN settings s ON s.user_id = u.id
	WHERE er.event_id = $1
	  AND er.status = 'confirmed'
	  AND s.notify_event_reminder = TRUE`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
