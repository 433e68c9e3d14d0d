// Package metrics exposes batch and order outcomes as Prometheus counters.
package metrics

import (
	"net/http"
	"strconv"

	"orderprocessing/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts processed batches and per-order outcomes.
type Recorder struct {
	batches *prometheus.CounterVec
	orders  *prometheus.CounterVec
}

// NewRecorder creates the counters and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orderprocessing",
			Name:      "batches_total",
			Help:      "Order batches processed, by outcome.",
		}, []string{"succeeded"}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orderprocessing",
			Name:      "orders_total",
			Help:      "Orders processed, by final status.",
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{r.batches, r.orders} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Recorder) ObserveBatch(succeeded bool) {
	r.batches.WithLabelValues(strconv.FormatBool(succeeded)).Inc()
}

func (r *Recorder) ObserveOrder(status order.Status) {
	r.orders.WithLabelValues(status.String()).Inc()
}

// Handler serves the metrics gathered by g in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
