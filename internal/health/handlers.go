// Package health exposes liveness and readiness endpoints.
package health

import (
	"encoding/json"
	"net/http"
)

// StoreStats reports counters describing the in-memory receipt store.
type StoreStats interface {
	Len() int
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Store StoreStats
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness. The service has no external dependencies, so
// readiness only confirms the store is wired and reports its size.
func (h Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if h.Store == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]any{"store": "not configured"})
		return
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"store":    "ok",
		"receipts": h.Store.Len(),
	})
}
