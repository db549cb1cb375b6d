package timings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	errs "github.com/AidarKhafizov/prayer-notify-service/internal/errors"

	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Provider — внешний источник расписаний намазов (API Aladhan).
type Provider interface {
	FetchTimings(ctx context.Context, city string, day time.Time, madhab string) (domain.Timetable, error)
}

// Cache — дневной кэш расписаний по ключу (город, день, мазхаб).
// Конкурентные промахи по одному ключу схлопываются в один запрос к провайдеру,
// ошибка провайдера не кэшируется: следующий тик попробует снова.
type Cache struct {
	provider    Provider
	store       *gocache.Cache
	group       singleflight.Group
	callTimeout time.Duration
	logger      *slog.Logger
}

func NewCache(provider Provider, callTimeout time.Duration, logger *slog.Logger) *Cache {
	if callTimeout <= 0 {
		callTimeout = 10 * time.Second
	}
	return &Cache{
		provider:    provider,
		store:       gocache.New(gocache.NoExpiration, 10*time.Minute),
		callTimeout: callTimeout,
		logger:      logger,
	}
}

// Get — расписание города на день. Промах кэша стоит одного запроса к
// провайдеру на всех конкурентных вызывающих.
func (c *Cache) Get(ctx context.Context, city string, day time.Time, madhab string) (domain.Timetable, error) {
	key := cacheKey(city, day, madhab)

	if v, ok := c.store.Get(key); ok {
		return v.(domain.Timetable), nil
	}

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		// Пока мы ждали своей очереди, ключ мог появиться
		if v, ok := c.store.Get(key); ok {
			return v.(domain.Timetable), nil
		}

		cctx, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()

		tt, err := c.provider.FetchTimings(cctx, city, day, madhab)
		if err != nil {
			c.logger.Warn("timings provider call failed",
				slog.String("city", city),
				slog.String("madhab", madhab),
				slog.Any("err", err),
			)
			return nil, fmt.Errorf("timings for %s on %s: %w", city, day.Format("2006-01-02"), errs.ErrProviderUnavailable)
		}

		// Запись живёт до конца календарного дня. Полночь берём по UTC —
		// документированное приближение локальной полуночи города.
		c.store.Set(key, tt, untilNextUTCMidnight(time.Now()))
		return tt, nil
	})
	if err != nil {
		return domain.Timetable{}, err
	}
	if shared {
		c.logger.Debug("timings lookup coalesced", slog.String("key", key))
	}
	return v.(domain.Timetable), nil
}

func cacheKey(city string, day time.Time, madhab string) string {
	return strings.ToLower(city) + "|" + day.Format("2006-01-02") + "|" + madhab
}

func untilNextUTCMidnight(now time.Time) time.Duration {
	utc := now.UTC()
	next := utc.Truncate(24 * time.Hour).Add(24 * time.Hour)
	return next.Sub(utc)
}
