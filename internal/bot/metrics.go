package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics структура для метрик Prometheus
type Metrics struct {
	MessagesProcessed    prometheus.Counter
	BookingsCreated      prometheus.Counter
	SlotConflicts        prometheus.Counter
	NotifyErrors         prometheus.Counter
	UpdateProcessingTime prometheus.Histogram
}

// NewMetrics создает новые метрики
func NewMetrics() *Metrics {
	return &Metrics{
		MessagesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "zapysnyk_messages_processed_total",
			Help: "Total number of processed messages",
		}),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "zapysnyk_bookings_created_total",
			Help: "Total number of confirmed bookings",
		}),

		SlotConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "zapysnyk_slot_conflicts_total",
			Help: "Total number of booking attempts that lost a slot race",
		}),

		NotifyErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "zapysnyk_notify_errors_total",
			Help: "Total number of failed admin notifications",
		}),

		UpdateProcessingTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "zapysnyk_update_processing_time_seconds",
			Help:    "Time spent processing updates",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
