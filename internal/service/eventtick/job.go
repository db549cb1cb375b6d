package eventtick

import (
	"context"
	"log/slog"
	"time"

	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	"github.com/AidarKhafizov/prayer-notify-service/internal/metrics"
	"github.com/AidarKhafizov/prayer-notify-service/internal/service/dispatch"
)

// EventStore — читающий доступ к мероприятиям сообщества
type EventStore interface {
	StartingWithin(ctx context.Context, from, to time.Time) ([]domain.Event, error)
}

// Directory — подтверждённые регистранты с включёнными напоминаниями
type Directory interface {
	EventSubscribers(ctx context.Context, eventID int64) ([]int64, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, trigger domain.Trigger, recipients []int64) []domain.DeliveryOutcome
}

// Job — часовая джоба напоминаний о мероприятиях, стартующих в окне
// (now, now+lookAhead]. Дедупликации между тиками нет: мероприятие,
// попадающее в окно нескольких часовых тиков, напоминается на каждом —
// поведение исходной системы, закреплено тестом.
type Job struct {
	events     EventStore
	directory  Directory
	dispatcher Dispatcher
	lookAhead  time.Duration
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewJob(events EventStore, directory Directory, dispatcher Dispatcher, lookAhead time.Duration, m *metrics.Metrics, logger *slog.Logger) *Job {
	if lookAhead <= 0 {
		lookAhead = 24 * time.Hour
	}
	return &Job{
		events:     events,
		directory:  directory,
		dispatcher: dispatcher,
		lookAhead:  lookAhead,
		metrics:    m,
		logger:     logger,
	}
}

// Run — одна итерация: активные мероприятия в окне и рассылка их регистрантам
func (j *Job) Run(ctx context.Context, now time.Time) {
	j.logger.Debug("event tick started", slog.Time("now", now))

	events, err := j.events.StartingWithin(ctx, now, now.Add(j.lookAhead))
	if err != nil {
		j.logger.Error("load upcoming events", slog.Any("err", err))
		return
	}
	if len(events) == 0 {
		j.logger.Debug("no events inside the look-ahead window")
		return
	}

	for _, e := range events {
		trigger := domain.EventTrigger{Event: e, FireTime: now}
		j.metrics.TriggersFired.WithLabelValues("event").Inc()

		recipients, err := j.directory.EventSubscribers(ctx, e.ID)
		if err != nil {
			j.logger.Error("load event subscribers",
				slog.Int64("event_id", e.ID),
				slog.Any("err", err),
			)
			continue
		}
		if len(recipients) == 0 {
			j.logger.Debug("event has no recipients", slog.Int64("event_id", e.ID))
			continue
		}

		outcomes := j.dispatcher.Dispatch(ctx, trigger, recipients)
		sent, skipped, failed := dispatch.Summarize(outcomes)
		j.logger.Info("event trigger dispatched",
			slog.String("trigger", trigger.Key()),
			slog.Int("recipients", len(recipients)),
			slog.Int("sent", sent),
			slog.Int("skipped", skipped),
			slog.Int("failed", failed),
		)
	}
}
