package metrics

// Package metrics provides Prometheus metrics collection for the Open Assets address services.
//
// This package includes:
// - HTTP request metrics (count, latency, errors)
// - Address conversion outcomes per direction
// - Metrics HTTP server on configurable port
// - Echo middleware for automatic request instrumentation
//
// Usage:
//   import "github.com/vultisig/openassets/internal/metrics"
//
//   // Start metrics server
//   metricsServer := metrics.StartMetricsServer(cfg.Metrics, []string{metrics.ServiceHTTP}, logger)
//   defer metricsServer.Stop(context.Background())
//
//   // Add middleware to Echo
//   e.Use(metrics.HTTPMiddleware())
