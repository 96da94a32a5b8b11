package api

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "statusgraph_"

var (
	registerOnce sync.Once

	busPublishes  *prometheus.CounterVec
	windowChanges prometheus.Counter
	wsClients     prometheus.Gauge
)

// initMetrics registers the server's metrics once.
func initMetrics() {
	registerOnce.Do(func() {
		busPublishes = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "bus_publishes_total",
				Help: "Total synchronization bus publishes by topic",
			},
			[]string{"topic"},
		)
		windowChanges = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "window_changes_total",
				Help: "Total duration-window changes requested by clients",
			},
		)
		wsClients = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "ws_clients",
				Help: "Currently connected websocket clients",
			},
		)

		prometheus.MustRegister(busPublishes, windowChanges, wsClients)
	})
}
