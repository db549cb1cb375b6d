package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OpsHandler — служебная HTTP-поверхность движка: здоровье процесса
// и счётчики Prometheus. Другого HTTP у движка нет.
type OpsHandler struct {
	log      *slog.Logger
	gatherer prometheus.Gatherer
}

func NewOpsHandler(log *slog.Logger, gatherer prometheus.Gatherer) *OpsHandler {
	return &OpsHandler{log: log, gatherer: gatherer}
}

func (h *OpsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.handleHealth)
	e.GET("/metrics", echo.WrapHandler(
		promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}),
	))
}

func (h *OpsHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
