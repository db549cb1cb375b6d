package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	errs "github.com/AidarKhafizov/prayer-notify-service/internal/errors"

	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	"github.com/AidarKhafizov/prayer-notify-service/internal/metrics"
	"github.com/AidarKhafizov/prayer-notify-service/internal/pkg/msgfmt"
	"golang.org/x/sync/errgroup"
)

// Sender — доставка одного текстового сообщения пользователю.
// Блокировку бота и деактивацию аккаунта реализация обязана
// возвращать как errs.ErrRecipientBlocked / errs.ErrRecipientDeactivated.
type Sender interface {
	Send(ctx context.Context, userID int64, text string) error
}

// OutcomeRecorder — запись исходов доставки (опционально, может быть nil)
type OutcomeRecorder interface {
	Record(ctx context.Context, outcomes []domain.DeliveryOutcome) error
}

// Dispatcher — веерная рассылка одного триггера по списку получателей.
// Ошибка одного получателя никогда не прерывает остальных.
type Dispatcher struct {
	mu     sync.RWMutex
	sender Sender // появляется после старта процесса, см. SetSender

	recorder    OutcomeRecorder
	concurrency int
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

func NewDispatcher(recorder OutcomeRecorder, concurrency int, m *metrics.Metrics, logger *slog.Logger) *Dispatcher {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &Dispatcher{
		recorder:    recorder,
		concurrency: concurrency,
		metrics:     m,
		logger:      logger,
	}
}

// SetSender — хук внедрения отправителя после инициализации бота.
// Явная зависимость вместо глобального синглтона в исходной системе.
func (d *Dispatcher) SetSender(s Sender) {
	d.mu.Lock()
	d.sender = s
	d.mu.Unlock()
	d.logger.Info("message sender wired into dispatcher")
}

func (d *Dispatcher) currentSender() Sender {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sender
}

// Dispatch — рассылает сообщение триггера всем получателям с ограниченной
// конкурентностью и классифицирует неудачи по получателям.
func (d *Dispatcher) Dispatch(ctx context.Context, trigger domain.Trigger, recipients []int64) []domain.DeliveryOutcome {
	if len(recipients) == 0 {
		return nil
	}

	sender := d.currentSender()
	if sender == nil {
		d.logger.Error("dispatch skipped",
			slog.Any("err", errs.ErrSenderNotReady),
			slog.String("trigger", trigger.Key()),
			slog.Int("recipients", len(recipients)),
		)
		return nil
	}

	text := msgfmt.Render(trigger)
	outcomes := make([]domain.DeliveryOutcome, len(recipients))

	var eg errgroup.Group
	eg.SetLimit(d.concurrency)
	for i, userID := range recipients {
		eg.Go(func() error {
			// После отмены тика уже начатые отправки доезжают,
			// новые не стартуют
			var err error
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = ctxErr
			} else {
				err = sender.Send(ctx, userID, text)
			}
			outcomes[i] = domain.DeliveryOutcome{
				UserID:     userID,
				TriggerKey: trigger.Key(),
				Status:     classify(err),
				Timestamp:  time.Now().UTC(),
			}
			if err != nil && outcomes[i].Status == domain.DeliveryFailed {
				d.logger.Error("send failed",
					slog.Int64("user_id", userID),
					slog.String("trigger", trigger.Key()),
					slog.Any("err", err),
				)
			}
			return nil
		})
	}
	_ = eg.Wait()

	for _, o := range outcomes {
		d.metrics.Deliveries.WithLabelValues(string(o.Status)).Inc()
	}

	if d.recorder != nil {
		if err := d.recorder.Record(ctx, outcomes); err != nil {
			d.logger.Warn("record delivery outcomes failed",
				slog.String("trigger", trigger.Key()),
				slog.Any("err", err),
			)
		}
	}
	return outcomes
}

// classify — статус исхода по ошибке отправки
func classify(err error) domain.DeliveryStatus {
	switch {
	case err == nil:
		return domain.DeliverySent
	case errors.Is(err, errs.ErrRecipientBlocked):
		return domain.DeliverySkippedBlocked
	case errors.Is(err, errs.ErrRecipientDeactivated):
		return domain.DeliverySkippedDeactivated
	default:
		return domain.DeliveryFailed
	}
}
