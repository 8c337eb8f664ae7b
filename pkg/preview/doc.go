// Package preview serves rendered element trees over HTTP during
// development. It mounts one route per page, a Prometheus metrics
// endpoint, and a websocket live-reload channel, and can watch the
// filesystem to push reloads to connected browsers.
package preview
