package observe_test

import (
	"context"
	"log"
	"net/http"

	"github.com/jonwraymond/opskit/observe"
)

func Example() {
	ctx := context.Background()

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: "checkout",
		Version:     "1.0.0",
		Environment: "production",
		Tracing: observe.TracingConfig{
			Enabled:   true,
			Exporter:  "none",
			SamplePct: 0.1,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  true,
			Exporter: "none",
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer obs.Shutdown(ctx)

	_, span := observe.StartSpan(ctx, obs.Tracer(), "process-order")
	span.End()
}

func ExampleMiddleware() {
	ctx := context.Background()

	obs, err := observe.NewObserver(ctx, observe.Config{ServiceName: "checkout"})
	if err != nil {
		log.Fatal(err)
	}
	defer obs.Shutdown(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", observe.PrometheusHandler())

	handler, err := observe.Middleware(obs, "api", mux)
	if err != nil {
		log.Fatal(err)
	}
	_ = handler
}
