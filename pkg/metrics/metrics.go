package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "voucher_gateway_"

	ResultSuccess = "success"
)

var (
	registerOnce sync.Once

	locateTotal *prometheus.CounterVec

	settleTotal   *prometheus.CounterVec
	settleLatency *prometheus.HistogramVec

	issueTotal *prometheus.CounterVec

	backendLatency *prometheus.HistogramVec

	priceRefreshTotal *prometheus.CounterVec
	cachedPrices      prometheus.Gauge

	receiptExportTotal *prometheus.CounterVec
)

// Init registers gateway metrics in the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		locateTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "locate_total",
				Help: "Total voucher lookups by result",
			},
			[]string{"result"},
		)

		settleTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "settle_total",
				Help: "Total voucher settlements by result",
			},
			[]string{"result"},
		)
		settleLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "settle_latency_seconds",
				Help:    "Voucher settlement latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		issueTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "issue_total",
				Help: "Total issued requisitions by result",
			},
			[]string{"result"},
		)

		backendLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "backend_request_duration_seconds",
				Help:    "Backend API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		priceRefreshTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "price_refresh_total",
				Help: "Total fuel price cache refreshes by result",
			},
			[]string{"result"},
		)
		cachedPrices = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "cached_fuel_prices",
				Help: "Number of fuel types with a cached current price",
			},
		)

		receiptExportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "receipt_export_total",
				Help: "Total receipt documents rendered by format and result",
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			locateTotal,
			settleTotal,
			settleLatency,
			issueTotal,
			backendLatency,
			priceRefreshTotal,
			cachedPrices,
			receiptExportTotal,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncLocate(result string) {
	if locateTotal != nil {
		locateTotal.WithLabelValues(orSuccess(result)).Inc()
	}
}

func ObserveSettle(result string, duration time.Duration) {
	result = orSuccess(result)

	if settleTotal != nil {
		settleTotal.WithLabelValues(result).Inc()
	}

	if settleLatency != nil {
		settleLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

func IncIssue(result string) {
	if issueTotal != nil {
		issueTotal.WithLabelValues(orSuccess(result)).Inc()
	}
}

// ObserveBackend records a backend call. Status 0 means the request never got a response.
func ObserveBackend(method, path string, status int, duration time.Duration) {
	if backendLatency == nil {
		return
	}

	code := "none"
	if status > 0 {
		code = strconv.Itoa(status)
	}

	backendLatency.WithLabelValues(method, NormalizePath(path), code).Observe(duration.Seconds())
}

func ObservePriceRefresh(result string, cached int) {
	if priceRefreshTotal != nil {
		priceRefreshTotal.WithLabelValues(orSuccess(result)).Inc()
	}

	if cachedPrices != nil && result == ResultSuccess {
		cachedPrices.Set(float64(cached))
	}
}

func IncReceiptExport(format, result string) {
	if format == "" {
		format = "unknown"
	}

	if receiptExportTotal != nil {
		receiptExportTotal.WithLabelValues(format, orSuccess(result)).Inc()
	}
}

// NormalizePath replaces numeric path segments with ":id" to keep label cardinality bounded.
func NormalizePath(path string) string {
	segments := strings.Split(path, "/")

	for i, s := range segments {
		if s == "" {
			continue
		}

		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			segments[i] = ":id"
		}
	}

	return strings.Join(segments, "/")
}

func orSuccess(result string) string {
	if result == "" {
		return ResultSuccess
	}

	return result
}
