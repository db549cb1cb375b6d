package postgres

import (
	"context"
	"time"

	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepo — читающий доступ к мероприятиям сообщества
type EventRepo struct {
	db *pgxpool.Pool
}

func NewEventRepo(db *pgxpool.Pool) *EventRepo {
	return &EventRepo{db: db}
}

// StartingWithin — активные мероприятия со стартом в интервале (from, to]
func (r *EventRepo) StartingWithin(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	query := `
	SELECT id, title, start_time, COALESCE(location, ''), status
	FROM community_events
	WHERE status = 'active'
	  AND start_time > $1
	  AND start_time <= $2
	ORDER BY start_time`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.StartTime, &e.Location, &e.Status); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
