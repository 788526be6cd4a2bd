package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PreordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tepico_preorders_created_total",
		Help: "Preorder rows created through submissions.",
	})

	StatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tepico_status_updates_total",
		Help: "Status transitions applied by staff.",
	}, []string{"status"})

	FeedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tepico_feed_clients",
		Help: "Websocket clients subscribed to a change feed.",
	})
)
