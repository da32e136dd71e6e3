// Package metrics defines and registers all custom Prometheus metrics for
// the sweet shop API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// SweetsCreatedTotal counts sweets added to the catalog.
// Label:
//   - category: the free-text category the sweet was created under
var SweetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweets_created_total",
		Help:      "Total number of sweets added to the catalog, by category.",
	},
	[]string{"category"},
)

// PurchasesTotal counts purchase attempts.
// Label:
//   - result: "ok" or "out_of_stock"
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchase attempts, labelled by result.",
	},
	[]string{"result"},
)

// RestocksTotal counts successful restock operations.
var RestocksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restocks_total",
		Help:      "Total number of successful restock operations.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
