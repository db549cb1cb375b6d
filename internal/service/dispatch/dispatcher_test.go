package dispatch_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	errs "github.com/AidarKhafizov/prayer-notify-service/internal/errors"
	"github.com/AidarKhafizov/prayer-notify-service/internal/metrics"
	"github.com/AidarKhafizov/prayer-notify-service/internal/service/dispatch"
	dispatchmocks "github.com/AidarKhafizov/prayer-notify-service/internal/service/dispatch/mocks"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
)

func fajrTrigger() domain.PrayerTrigger {
	return domain.PrayerTrigger{
		City:     "Ufa",
		Prayer:   domain.PrayerFajr,
		FireTime: time.Date(2026, 8, 28, 5, 32, 0, 0, time.UTC),
	}
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// FailureIsolation: падение отправки одному получателю не мешает остальным,
// каждый получает свою попытку доставки и свой классифицированный исход
func TestDispatch_FailureIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := dispatchmocks.NewMockSender(ctrl)
	recorder := dispatchmocks.NewMockOutcomeRecorder(ctrl)

	// Четыре получателя: успех, транспортная ошибка, блокировка, деактивация
	sender.EXPECT().Send(gomock.Any(), int64(1), gomock.Any()).Return(nil).Times(1)
	sender.EXPECT().Send(gomock.Any(), int64(2), gomock.Any()).Return(errors.New("telegram: 502")).Times(1)
	sender.EXPECT().Send(gomock.Any(), int64(3), gomock.Any()).Return(errs.ErrRecipientBlocked).Times(1)
	sender.EXPECT().Send(gomock.Any(), int64(4), gomock.Any()).Return(errs.ErrRecipientDeactivated).Times(1)

	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	d := dispatch.NewDispatcher(recorder, 2, newTestMetrics(), slog.Default())
	d.SetSender(sender)

	outcomes := d.Dispatch(ctx, fajrTrigger(), []int64{1, 2, 3, 4})
	if len(outcomes) != 4 {
		t.Fatalf("expected 4 outcomes, got %d", len(outcomes))
	}

	byUser := make(map[int64]domain.DeliveryStatus, len(outcomes))
	for _, o := range outcomes {
		byUser[o.UserID] = o.Status
	}
	want := map[int64]domain.DeliveryStatus{
		1: domain.DeliverySent,
		2: domain.DeliveryFailed,
		3: domain.DeliverySkippedBlocked,
		4: domain.DeliverySkippedDeactivated,
	}
	for user, status := range want {
		if byUser[user] != status {
			t.Errorf("user %d: expected %s, got %s", user, status, byUser[user])
		}
	}
}

// Текст сообщения рендерится из триггера и доходит до отправителя как есть
func TestDispatch_RendersPrayerMessage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := dispatchmocks.NewMockSender(ctrl)
	sender.EXPECT().
		Send(gomock.Any(), int64(7), "🕌 Время намаза Фаджр в г. Ufa!").
		Return(nil).
		Times(1)

	d := dispatch.NewDispatcher(nil, 1, newTestMetrics(), slog.Default())
	d.SetSender(sender)

	outcomes := d.Dispatch(ctx, fajrTrigger(), []int64{7})
	if len(outcomes) != 1 || outcomes[0].Status != domain.DeliverySent {
		t.Fatalf("unexpected outcomes: %+v", outcomes)
	}
	if outcomes[0].TriggerKey != "prayer:Ufa:Fajr:2026-08-28" {
		t.Errorf("unexpected trigger key: %s", outcomes[0].TriggerKey)
	}
}

// Пока отправитель не внедрён — рассылка только логирует и пропускает
func TestDispatch_SenderNotWired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorder := dispatchmocks.NewMockOutcomeRecorder(ctrl)
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Times(0)

	d := dispatch.NewDispatcher(recorder, 4, newTestMetrics(), slog.Default())

	if outcomes := d.Dispatch(ctx, fajrTrigger(), []int64{1, 2}); outcomes != nil {
		t.Fatalf("expected nil outcomes without sender, got %+v", outcomes)
	}
}

// Пустой список получателей не трогает ни отправителя, ни журнал
func TestDispatch_NoRecipients(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := dispatchmocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	d := dispatch.NewDispatcher(nil, 4, newTestMetrics(), slog.Default())
	d.SetSender(sender)

	if outcomes := d.Dispatch(ctx, fajrTrigger(), nil); outcomes != nil {
		t.Fatalf("expected nil outcomes, got %+v", outcomes)
	}
}

// Ошибка журнала исходов не влияет на результат рассылки
func TestDispatch_RecorderFailureIgnored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := dispatchmocks.NewMockSender(ctrl)
	recorder := dispatchmocks.NewMockOutcomeRecorder(ctrl)

	sender.EXPECT().Send(gomock.Any(), int64(1), gomock.Any()).Return(nil).Times(1)
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")).Times(1)

	d := dispatch.NewDispatcher(recorder, 1, newTestMetrics(), slog.Default())
	d.SetSender(sender)

	outcomes := d.Dispatch(ctx, fajrTrigger(), []int64{1})
	if len(outcomes) != 1 || outcomes[0].Status != domain.DeliverySent {
		t.Fatalf("unexpected outcomes: %+v", outcomes)
	}
}

// Отменённый контекст: новые отправки не стартуют, исходы — Failed
func TestDispatch_CancelledContext(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := dispatchmocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	d := dispatch.NewDispatcher(nil, 2, newTestMetrics(), slog.Default())
	d.SetSender(sender)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := d.Dispatch(ctx, fajrTrigger(), []int64{1, 2})
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	for _, o := range outcomes {
		if o.Status != domain.DeliveryFailed {
			t.Errorf("user %d: expected failed, got %s", o.UserID, o.Status)
		}
	}
}
