package prayertick

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AidarKhafizov/prayer-notify-service/internal/consts"
	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	"github.com/AidarKhafizov/prayer-notify-service/internal/metrics"
	"github.com/AidarKhafizov/prayer-notify-service/internal/service/dispatch"
)

// Directory — читающий доступ к пользователям и их настройкам уведомлений
type Directory interface {
	CitiesWithPrayerSubscribers(ctx context.Context) ([]string, error)
	PrayerSubscribers(ctx context.Context, city string) ([]domain.Subscriber, error)
}

// Timetables — источник дневных расписаний намазов (кэш поверх провайдера)
type Timetables interface {
	Get(ctx context.Context, city string, day time.Time, madhab string) (domain.Timetable, error)
}

// Dispatcher — рассылка одного триггера по получателям
type Dispatcher interface {
	Dispatch(ctx context.Context, trigger domain.Trigger, recipients []int64) []domain.DeliveryOutcome
}

// Job — минутная джоба: какие намазы наступают сейчас и в каких городах.
// Ошибка одного города пропускает только этот город, тик продолжается.
type Job struct {
	directory  Directory
	timetables Timetables
	dispatcher Dispatcher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewJob(directory Directory, timetables Timetables, dispatcher Dispatcher, m *metrics.Metrics, logger *slog.Logger) *Job {
	return &Job{
		directory:  directory,
		timetables: timetables,
		dispatcher: dispatcher,
		metrics:    m,
		logger:     logger,
	}
}

// Run — одна итерация: города с активными подписчиками, расписание каждого,
// рассылка по намазам, чьё время совпало с текущей минутой.
func (j *Job) Run(ctx context.Context, now time.Time) {
	minute := now.Format("15:04")
	j.logger.Debug("prayer tick started", slog.String("minute", minute))

	cities, err := j.directory.CitiesWithPrayerSubscribers(ctx)
	if err != nil {
		j.logger.Error("load cities with subscribers", slog.Any("err", err))
		return
	}
	if len(cities) == 0 {
		j.logger.Debug("no cities with enabled prayer notifications")
		return
	}

	// Дата берётся по стенным часам now, как и сравниваемая минута:
	// иначе после местной полуночи сверялись бы со вчерашним расписанием
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	for _, city := range cities {
		if err := j.checkCity(ctx, city, day, now, minute); err != nil {
			j.logger.Warn("city skipped for this tick",
				slog.String("city", city),
				slog.Any("err", err),
			)
		}
	}
}

// checkCity — обработка одного города: снимок подписчиков, расписание,
// триггеры по совпавшей минуте.
func (j *Job) checkCity(ctx context.Context, city string, day, now time.Time, minute string) error {
	// Снимок настроек берётся один раз на город, чтобы переключение
	// тумблера посреди тика не расщепило рассылку
	subs, err := j.directory.PrayerSubscribers(ctx, city)
	if err != nil {
		return fmt.Errorf("load subscribers: %w", err)
	}
	if len(subs) == 0 {
		return nil
	}

	// Мазхаб первого подписчика на весь город — осознанное упрощение
	// исходной системы: один запрос расписания на город за тик
	madhab := subs[0].Madhab
	if madhab == "" {
		madhab = consts.DefaultMadhab
	}

	tt, err := j.timetables.Get(ctx, city, day, madhab)
	if err != nil {
		j.metrics.ProviderErrors.Inc()
		return err
	}

	for _, p := range consts.NotifiedPrayers {
		if tt.TimeFor(p) != minute {
			continue
		}

		trigger := domain.PrayerTrigger{City: city, Prayer: p, FireTime: now}
		j.metrics.TriggersFired.WithLabelValues("prayer").Inc()

		recipients := MatchPrayer(subs, p)
		if len(recipients) == 0 {
			j.logger.Debug("trigger has no recipients", slog.String("trigger", trigger.Key()))
			continue
		}

		outcomes := j.dispatcher.Dispatch(ctx, trigger, recipients)
		sent, skipped, failed := dispatch.Summarize(outcomes)
		j.logger.Info("prayer trigger dispatched",
			slog.String("trigger", trigger.Key()),
			slog.Int("recipients", len(recipients)),
			slog.Int("sent", sent),
			slog.Int("skipped", skipped),
			slog.Int("failed", failed),
		)
	}
	return nil
}
