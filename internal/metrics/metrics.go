package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics — счётчики движка уведомлений. Минимальная поверхность
// наблюдаемости: по ним видно пропущенные тики и недоставленные сообщения.
type Metrics struct {
	TriggersFired  *prometheus.CounterVec // триггеры по типу джобы
	Deliveries     *prometheus.CounterVec // исходы доставки по статусу
	TicksSkipped   *prometheus.CounterVec // тики, отброшенные из-за ещё идущего запуска
	ProviderErrors prometheus.Counter     // ошибки провайдера расписаний
}

// New создаёт и регистрирует счётчики в переданном Registerer.
// Тесты передают сюда prometheus.NewRegistry(), чтобы не конфликтовать.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TriggersFired: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notify_triggers_fired_total",
				Help: "Triggers computed per job type",
			},
			[]string{"job"},
		),
		Deliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notify_deliveries_total",
				Help: "Delivery outcomes by status",
			},
			[]string{"status"},
		),
		TicksSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notify_ticks_skipped_total",
				Help: "Ticks dropped because the previous run was still in flight",
			},
			[]string{"job"},
		),
		ProviderErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "notify_provider_errors_total",
				Help: "Timings provider failures",
			},
		),
	}
	reg.MustRegister(m.TriggersFired, m.Deliveries, m.TicksSkipped, m.ProviderErrors)
	return m
}
