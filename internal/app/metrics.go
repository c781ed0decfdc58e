package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reorderOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reorder_operations_total",
			Help: "Order-changing commands by collection and operation",
		},
		[]string{"collection", "operation"},
	)

	orderIndexWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_index_writes_total",
			Help: "Records whose order index was scheduled for persistence",
		},
		[]string{"collection"},
	)
)
