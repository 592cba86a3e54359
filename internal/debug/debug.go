// Package debug exposes operational endpoints for editorlink tools:
// a liveness check and the Prometheus metrics of a protocol client.
package debug

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns the debug HTTP handler with /healthz and /metrics.
func Handler(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	return r
}

// Serve runs the debug server on addr. It blocks until the listener fails.
func Serve(addr string, g prometheus.Gatherer) error {
	return http.ListenAndServe(addr, Handler(g))
}
