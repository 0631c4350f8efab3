// Package observe provides OpenTelemetry initialization for web services.
//
// The package wires up tracing and metrics providers with pluggable
// exporters (OTLP over gRPC, Prometheus, stdout, or none), installs the
// W3C trace context propagator, and exposes HTTP auto-instrumentation
// middleware. It is meant to be called once at the very start of main.
//
// # Basic Usage
//
//	func main() {
//	    ctx := context.Background()
//
//	    obs, err := observe.NewObserver(ctx, observe.ConfigFromEnv())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer obs.Shutdown(ctx)
//
//	    handler, err := observe.Middleware(obs, "api", mux)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    http.ListenAndServe(":8080", handler)
//	}
//
// # Exporters
//
// Exporter selection is by name: "otlp" requires
// OTEL_EXPORTER_OTLP_ENDPOINT, "prometheus" registers with the default
// Prometheus registry (serve it with PrometheusHandler), "stdout" prints
// to standard output, and "none" discards all telemetry. Disabled
// subsystems use no-op providers, so instrumented code needs no guards.
package observe
