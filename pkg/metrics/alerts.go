package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// AlertMetrics records dispatch outcomes for stock alerts.
type AlertMetrics struct {
	enqueued  prometheus.Counter
	delivered prometheus.Counter
	failed    prometheus.Counter
	dropped   prometheus.Counter
	inFlight  prometheus.Gauge
}

// NewAlertMetrics registers the alert metrics on the provided registerer.
func NewAlertMetrics(reg prometheus.Registerer) *AlertMetrics {
	if reg == nil {
		return &AlertMetrics{}
	}
	enqueued := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alerts_enqueued_total",
		Help: "Alerts accepted onto the dispatch queue.",
	})
	delivered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alerts_delivered_total",
		Help: "Alerts successfully delivered by the notifier.",
	})
	failed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alerts_failed_total",
		Help: "Alert deliveries that returned an error.",
	})
	dropped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alerts_dropped_total",
		Help: "Alerts dropped because the queue was full or the notifier unconfigured.",
	})
	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "alerts_in_flight",
		Help: "Alert deliveries currently running.",
	})
	reg.MustRegister(enqueued, delivered, failed, dropped, inFlight)
	return &AlertMetrics{
		enqueued:  enqueued,
		delivered: delivered,
		failed:    failed,
		dropped:   dropped,
		inFlight:  inFlight,
	}
}

// IncEnqueued counts an alert accepted onto the queue.
func (a *AlertMetrics) IncEnqueued() {
	if a == nil || a.enqueued == nil {
		return
	}
	a.enqueued.Inc()
}

// IncDelivered counts a successful delivery.
func (a *AlertMetrics) IncDelivered() {
	if a == nil || a.delivered == nil {
		return
	}
	a.delivered.Inc()
}

// IncFailed counts a delivery error.
func (a *AlertMetrics) IncFailed() {
	if a == nil || a.failed == nil {
		return
	}
	a.failed.Inc()
}

// IncDropped counts an alert that never reached the notifier.
func (a *AlertMetrics) IncDropped() {
	if a == nil || a.dropped == nil {
		return
	}
	a.dropped.Inc()
}

// DeliveryStarted marks a delivery in flight.
func (a *AlertMetrics) DeliveryStarted() {
	if a == nil || a.inFlight == nil {
		return
	}
	a.inFlight.Inc()
}

// DeliveryFinished clears an in-flight delivery.
func (a *AlertMetrics) DeliveryFinished() {
	if a == nil || a.inFlight == nil {
		return
	}
	a.inFlight.Dec()
}
