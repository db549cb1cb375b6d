package eventtick_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	"github.com/AidarKhafizov/prayer-notify-service/internal/metrics"
	"github.com/AidarKhafizov/prayer-notify-service/internal/service/eventtick"
	tickmocks "github.com/AidarKhafizov/prayer-notify-service/internal/service/eventtick/mocks"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// Мероприятие за 20 часов до старта попадает в окно 24h на двух
// последовательных часовых тиках и рассылается на каждом: дедупликации
// между тиками нет, это закреплённое поведение исходной системы
func TestRun_EventRefiresOnEveryQualifyingTick(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := tickmocks.NewMockEventStore(ctrl)
	dir := tickmocks.NewMockDirectory(ctrl)
	disp := tickmocks.NewMockDispatcher(ctrl)

	firstTick := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	secondTick := firstTick.Add(time.Hour)
	event := domain.Event{
		ID:        1,
		Title:     "Ифтар в мечети",
		StartTime: firstTick.Add(20 * time.Hour),
		Location:  "Казань",
		Status:    domain.EventActive,
	}

	store.EXPECT().
		StartingWithin(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, from, to time.Time) ([]domain.Event, error) {
			if to.Sub(from) != 24*time.Hour {
				t.Errorf("look-ahead window: expected 24h, got %v", to.Sub(from))
			}
			return []domain.Event{event}, nil
		}).
		Times(2)

	dir.EXPECT().EventSubscribers(gomock.Any(), int64(1)).Return([]int64{10, 11}, nil).Times(2)

	var keys []string
	disp.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), []int64{10, 11}).
		DoAndReturn(func(_ context.Context, trigger domain.Trigger, _ []int64) []domain.DeliveryOutcome {
			keys = append(keys, trigger.Key())
			return nil
		}).
		Times(2)

	job := eventtick.NewJob(store, dir, disp, 24*time.Hour, newTestMetrics(), slog.Default())
	job.Run(ctx, firstTick)
	job.Run(ctx, secondTick)

	if len(keys) != 2 {
		t.Fatalf("expected 2 dispatches, got %d", len(keys))
	}
	// Ключи разных тиков различаются часом — это видимый след повторной рассылки
	if keys[0] == keys[1] {
		t.Errorf("expected distinct trigger keys per tick, got %q twice", keys[0])
	}
}

// Ошибка выборки регистрантов одного мероприятия не мешает остальным
func TestRun_SubscriberErrorSkipsEventOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := tickmocks.NewMockEventStore(ctrl)
	dir := tickmocks.NewMockDirectory(ctrl)
	disp := tickmocks.NewMockDispatcher(ctrl)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	events := []domain.Event{
		{ID: 1, Title: "Лекция", StartTime: now.Add(3 * time.Hour), Status: domain.EventActive},
		{ID: 2, Title: "Маджлис", StartTime: now.Add(5 * time.Hour), Status: domain.EventActive},
	}

	store.EXPECT().StartingWithin(gomock.Any(), gomock.Any(), gomock.Any()).Return(events, nil).Times(1)

	dir.EXPECT().EventSubscribers(gomock.Any(), int64(1)).Return(nil, errors.New("db down")).Times(1)
	dir.EXPECT().EventSubscribers(gomock.Any(), int64(2)).Return([]int64{42}, nil).Times(1)

	disp.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), []int64{42}).
		DoAndReturn(func(_ context.Context, trigger domain.Trigger, _ []int64) []domain.DeliveryOutcome {
			if trigger.(domain.EventTrigger).Event.ID != 2 {
				t.Errorf("expected event 2, got %+v", trigger)
			}
			return nil
		}).
		Times(1)

	job := eventtick.NewJob(store, dir, disp, 24*time.Hour, newTestMetrics(), slog.Default())
	job.Run(ctx, now)
}

// Падение хранилища мероприятий завершает тик без рассылок и без паники
func TestRun_StoreErrorEndsTickQuietly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := tickmocks.NewMockEventStore(ctrl)
	dir := tickmocks.NewMockDirectory(ctrl)
	disp := tickmocks.NewMockDispatcher(ctrl)

	store.EXPECT().StartingWithin(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)
	dir.EXPECT().EventSubscribers(gomock.Any(), gomock.Any()).Times(0)
	disp.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	job := eventtick.NewJob(store, dir, disp, 24*time.Hour, newTestMetrics(), slog.Default())
	job.Run(ctx, time.Now())
}

// Мероприятия без получателей не дёргают диспетчер
func TestRun_NoRecipientsNoDispatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := tickmocks.NewMockEventStore(ctrl)
	dir := tickmocks.NewMockDirectory(ctrl)
	disp := tickmocks.NewMockDispatcher(ctrl)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	store.EXPECT().StartingWithin(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.Event{
		{ID: 5, Title: "Субботник", StartTime: now.Add(2 * time.Hour), Status: domain.EventActive},
	}, nil).Times(1)
	dir.EXPECT().EventSubscribers(gomock.Any(), int64(5)).Return(nil, nil).Times(1)
	disp.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	job := eventtick.NewJob(store, dir, disp, 24*time.Hour, newTestMetrics(), slog.Default())
	job.Run(ctx, now)
}
