package observe

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusHandler returns an http.Handler exposing the default
// Prometheus registry. Use it together with the "prometheus" metrics
// exporter, whose collectors register against the default registry.
//
//	mux.Handle("/metrics", observe.PrometheusHandler())
func PrometheusHandler() http.Handler {
	return promhttp.Handler()
}
