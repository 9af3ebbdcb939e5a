// Package server serves a directory of static files and an entry page for
// minireact apps.
//
// "/" serves the configured entry page (index.html by default). Every other
// GET or HEAD path is looked up under the root directory; dot-files and
// traversal attempts are refused. When live reload is on, the entry page gets
// the reload client injected and the root directory is watched.
//
// Operational endpoints:
//
//	/healthz              liveness check
//	/metrics              prometheus metrics (configurable path)
//	/_minireact/reload    live reload WebSocket
package server
