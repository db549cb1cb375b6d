package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AidarKhafizov/prayer-notify-service/internal/metrics"
)

// Job — периодическая джоба движка уведомлений
type Job interface {
	Run(ctx context.Context, now time.Time)
}

// entry — одна джоба со своим тикером и своим флагом выполнения
type entry struct {
	name     string
	interval time.Duration
	job      Job
	running  atomic.Bool
}

// Core владеет тикерами джоб и гарантирует не больше одного
// одновременного запуска на каждую джобу: тик, пришедший поверх ещё
// идущего запуска той же джобы, отбрасывается и считается, никогда
// не ставится в очередь.
type Core struct {
	entries  []*entry
	deadline time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCore(deadline time.Duration, m *metrics.Metrics, logger *slog.Logger) *Core {
	if deadline <= 0 {
		deadline = 50 * time.Second
	}
	return &Core{
		deadline: deadline,
		metrics:  m,
		logger:   logger,
	}
}

// Add регистрирует джобу; вызывать до Start
func (c *Core) Add(name string, interval time.Duration, job Job) {
	if interval <= 0 {
		interval = time.Minute
	}
	c.entries = append(c.entries, &entry{name: name, interval: interval, job: job})
}

// Start запускает цикл тикера каждой джобы и сразу возвращается
func (c *Core) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)
	for _, e := range c.entries {
		c.logger.Info("scheduler job started",
			slog.String("job", e.name),
			slog.Duration("interval", e.interval),
		)
		c.wg.Add(1)
		go c.runLoop(ctx, e)
	}
}

// Stop останавливает тикеры и дожидается завершения идущих тиков
func (c *Core) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	c.logger.Info("scheduler stopped")
}

func (c *Core) runLoop(ctx context.Context, e *entry) {
	defer c.wg.Done()

	t := time.NewTicker(e.interval)
	defer t.Stop()

	// первый запуск сразу
	c.fire(ctx, e, time.Now())

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("scheduler job stopped", slog.String("job", e.name))
			return
		case now := <-t.C:
			c.fire(ctx, e, now)
		}
	}
}

// fire — запуск одного тика джобы в отдельной горутине.
// Паника внутри тика гасится на его границе и не валит планировщик.
func (c *Core) fire(ctx context.Context, e *entry, now time.Time) {
	if !e.running.CompareAndSwap(false, true) {
		c.metrics.TicksSkipped.WithLabelValues(e.name).Inc()
		c.logger.Warn("tick skipped: previous run still in flight", slog.String("job", e.name))
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer e.running.Store(false)

		// Тик отвязан от остановки тикеров: Stop дожидается его,
		// не отменяя. Единственная отмена тика — жёсткий дедлайн.
		tctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.deadline)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				c.logger.Error("tick panicked",
					slog.String("job", e.name),
					slog.Any("panic", r),
				)
			}
		}()

		started := time.Now()
		e.job.Run(tctx, now)
		c.logger.Debug("tick completed",
			slog.String("job", e.name),
			slog.Duration("duration", time.Since(started)),
		)
	}()
}
