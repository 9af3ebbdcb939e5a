// Package middleware provides observability for the minireact server and
// render engine.
//
// This package includes:
//   - Prometheus metrics for HTTP requests and renders
//   - OpenTelemetry tracing for HTTP requests
//
// # Prometheus Metrics
//
// Metrics wraps an http.Handler and also implements reconcile.Observer, so
// the same instance can count requests and renders:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(m.Handler)
//	engine := reconcile.New(reconcile.WithObserver(m))
//
// Metrics collected:
//   - minireact_http_requests_total{route,method,code}
//   - minireact_http_request_duration_seconds{route,method}
//   - minireact_renders_total{status}
//   - minireact_render_duration_seconds
//   - minireact_render_operations_total{op}
//   - minireact_render_errors_total{code}
//
// # OpenTelemetry
//
// Tracing starts a server span per request using the global tracer provider:
//
//	r.Use(middleware.Tracing(middleware.WithTracerName("site")))
//
// Configure the provider in main() before starting the server; without one,
// spans are no-ops.
package middleware
