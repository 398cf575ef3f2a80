package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix   = "lbaas"
	apiSubSystem   = "api"
	operationLabel = "op"
)

var (
	RequestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   metricPrefix,
		Subsystem:   apiSubSystem,
		Name:        "requests_total",
		Help:        "the number of requests to the load balancer resource API",
		ConstLabels: nil,
	}, []string{operationLabel})

	ErrorCount = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metricPrefix,
		Subsystem:   apiSubSystem,
		Name:        "errors_total",
		Help:        "the number of server errors returned by the load balancer resource API",
		ConstLabels: nil,
	})

	ResponseTimeHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   metricPrefix,
		Subsystem:   apiSubSystem,
		Name:        "request_duration_seconds",
		Help:        "the response times of the load balancer resource API",
		ConstLabels: nil,
		Buckets:     nil,
	}, []string{operationLabel})
)

type Exporter struct {
}

func NewExporter() *Exporter {
	e := &Exporter{}

	return e
}

func (e *Exporter) Describe(descs chan<- *prometheus.Desc) {
	RequestCount.Describe(descs)
	ErrorCount.Describe(descs)
	ResponseTimeHistogram.Describe(descs)
}

func (e *Exporter) Collect(metrics chan<- prometheus.Metric) {
	RequestCount.Collect(metrics)
	ErrorCount.Collect(metrics)
	ResponseTimeHistogram.Collect(metrics)
}
