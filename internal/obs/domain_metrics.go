package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// ReceiptsProcessedTotal counts receipt submissions by outcome.
	ReceiptsProcessedTotal *prometheus.CounterVec
	// PointsAwarded records the distribution of points per accepted receipt.
	PointsAwarded prometheus.Histogram
	// PointsLookupsTotal counts point lookups by outcome.
	PointsLookupsTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific
// Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		ReceiptsProcessedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "receipts_processed_total",
			Help:      "Count of receipt submissions by outcome.",
		}, []string{"result"})
		PointsAwarded = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "points_awarded",
			Help:      "Distribution of points awarded per accepted receipt.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500},
		})
		PointsLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_lookups_total",
			Help:      "Count of point lookups by outcome.",
		}, []string{"result"})
		reg.MustRegister(ReceiptsProcessedTotal, PointsAwarded, PointsLookupsTotal)
	})
}

// RegisterStoreGauge exposes the current number of stored receipts.
func RegisterStoreGauge(namespace string, reg prometheus.Registerer, size func() float64) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	registerCollector(reg, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "receipts_stored",
		Help:      "Number of receipts currently held in the in-memory store.",
	}, size))
}
