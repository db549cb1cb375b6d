package postgres

import (
	"context"

	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutcomeRepo — журнал исходов доставки. Ключ (user_id, trigger_key)
// уникален, повторная запись того же исхода — no-op; это задел под
// идемпотентность повторной доставки.
type OutcomeRepo struct {
	db *pgxpool.Pool
}

func NewOutcomeRepo(db *pgxpool.Pool) *OutcomeRepo {
	return &OutcomeRepo{db: db}
}

// Record — пакетная запись исходов одного триггера
func (r *OutcomeRepo) Record(ctx context.Context, outcomes []domain.DeliveryOutcome) error {
	if len(outcomes) == 0 {
		return nil
	}

	query := `
	INSERT INTO delivery_outcomes (user_id, trigger_key, status, created_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, trigger_key) DO NOTHING`

	batch := &pgx.Batch{}
	for _, o := range outcomes {
		batch.Queue(query, o.UserID, o.TriggerKey, string(o.Status), o.Timestamp)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for range outcomes {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
