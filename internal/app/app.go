package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	botpkg "github.com/AidarKhafizov/prayer-notify-service/internal/bot"
	"github.com/AidarKhafizov/prayer-notify-service/internal/config"
	"github.com/AidarKhafizov/prayer-notify-service/internal/infra/aladhan"
	"github.com/AidarKhafizov/prayer-notify-service/internal/metrics"
	repopg "github.com/AidarKhafizov/prayer-notify-service/internal/repository/postgres"
	"github.com/AidarKhafizov/prayer-notify-service/internal/scheduler"
	"github.com/AidarKhafizov/prayer-notify-service/internal/service/dispatch"
	"github.com/AidarKhafizov/prayer-notify-service/internal/service/eventtick"
	"github.com/AidarKhafizov/prayer-notify-service/internal/service/prayertick"
	"github.com/AidarKhafizov/prayer-notify-service/internal/service/timings"
	"github.com/AidarKhafizov/prayer-notify-service/internal/transport/httptransport"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	userRepo    *repopg.UserRepo
	eventRepo   *repopg.EventRepo
	outcomeRepo *repopg.OutcomeRepo

	dispatcher *dispatch.Dispatcher
	core       *scheduler.Core

	bot *botpkg.Bot
}

func NewApp(cfg config.Config, log *slog.Logger, db *pgxpool.Pool) (*App, error) {
	app := &App{cfg: cfg, log: log, db: db}

	app.userRepo = repopg.NewUserRepo(db)
	app.eventRepo = repopg.NewEventRepo(db)
	app.outcomeRepo = repopg.NewOutcomeRepo(db)

	m := metrics.New(prometheus.DefaultRegisterer)

	e := echo.New()
	e.HideBanner = true
	app.e = e

	ops := httptransport.NewOpsHandler(log, prometheus.DefaultGatherer)
	ops.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	provider := aladhan.NewClient(cfg.Aladhan)
	cache := timings.NewCache(provider, cfg.Aladhan.Timeout, log)

	app.dispatcher = dispatch.NewDispatcher(app.outcomeRepo, cfg.Scheduler.SendConcurrency, m, log)

	prayerJob := prayertick.NewJob(app.userRepo, cache, app.dispatcher, m, log)
	eventJob := eventtick.NewJob(app.eventRepo, app.userRepo, app.dispatcher, cfg.Scheduler.EventLookAhead, m, log)

	if cfg.Scheduler.Enabled {
		core := scheduler.NewCore(cfg.Scheduler.TickDeadline, m, log)
		core.Add("prayer", cfg.Scheduler.PrayerInterval, prayerJob)
		core.Add("event", cfg.Scheduler.EventInterval, eventJob)
		app.core = core
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена — ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			return nil, errors.New("telegram token is empty")
		}

		botApp, err := botpkg.New(
			botpkg.Config{
				Token:           token,
				SendTimeout:     cfg.Telegram.SendTimeout,
				LongPollTimeout: cfg.Telegram.LongPollTimeout,
			},
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.bot = botApp

		// Внедряем отправителя в диспетчер после инициализации бота;
		// до этого момента рассылка лишь логирует и пропускает
		app.dispatcher.SetSender(botApp)
	}

	log.Info("app initialized",
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.Bool("scheduler_enabled", cfg.Scheduler.Enabled),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.core != nil {
		a.log.Info("starting notification scheduler")
		a.core.Start(ctx)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		a.bot.Start(ctx)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
		}
	}()
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	// Идущие тики дорабатывают, новые не стартуют
	if a.core != nil {
		a.core.Stop()
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	if a.db != nil {
		a.db.Close()
	}

	a.log.Info("application stopped")
	return nil
}
