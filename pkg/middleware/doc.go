// Package middleware provides HTTP middleware for the preview server.
//
// Metrics collects Prometheus request metrics; Tracing emits an
// OpenTelemetry span per request. Both have the standard
// func(http.Handler) http.Handler shape and can be mounted on any
// router.
package middleware
