package dispatch

import "github.com/AidarKhafizov/prayer-notify-service/internal/domain"

// Summarize — свёртка исходов доставки для логов тика
func Summarize(outcomes []domain.DeliveryOutcome) (sent, skipped, failed int) {
	for _, o := range outcomes {
		switch o.Status {
		case domain.DeliverySent:
			sent++
		case domain.DeliverySkippedBlocked, domain.DeliverySkippedDeactivated:
			skipped++
		case domain.DeliveryFailed:
			failed++
		}
	}
	return sent, skipped, failed
}
