package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/AidarKhafizov/prayer-notify-service/internal/config"
	"github.com/AidarKhafizov/prayer-notify-service/internal/consts"
	"github.com/AidarKhafizov/prayer-notify-service/internal/domain"
)

type Client struct {
	cfg        config.AladhanConfig
	httpClient *http.Client
}

// aladhanResponse — структура для парсинга ответа API Aladhan
type aladhanResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// NewClient - создаёт нового клиента для работы с API Aladhan.
func NewClient(cfg config.AladhanConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchTimings — запрашивает расписание намазов города на заданный день
func (c *Client) FetchTimings(ctx context.Context, city string, day time.Time, madhab string) (domain.Timetable, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return domain.Timetable{}, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path, _ = url.JoinPath(u.Path, "timingsByCity")

	q := u.Query()
	q.Set("city", city)
	q.Set("country", c.cfg.Country)
	q.Set("method", strconv.Itoa(consts.MethodForMadhab(madhab)))
	q.Set("date", day.Format("2006-01-02"))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Timetable{}, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "prayer-notify-service/1.0"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Timetable{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Timetable{}, fmt.Errorf("request failed: %s", resp.Status)
	}

	var data aladhanResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return domain.Timetable{}, fmt.Errorf("decoding response: %w", err)
	}

	times := make(map[domain.Prayer]string, len(consts.NotifiedPrayers))
	for _, p := range consts.NotifiedPrayers {
		if v, ok := data.Data.Timings[string(p)]; ok {
			times[p] = normalizeTime(v)
		}
	}

	return domain.Timetable{
		City:   city,
		Date:   day,
		Madhab: madhab,
		Times:  times,
	}, nil
}

// normalizeTime — API иногда отдаёт время с суффиксом таймзоны ("05:32 (+03)"),
// для сравнения нужен чистый "HH:MM"
func normalizeTime(v string) string {
	if i := strings.IndexByte(v, ' '); i > 0 {
		return v[:i]
	}
	return v
}
