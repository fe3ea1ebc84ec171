// Package api provides HTTP API handlers for the AirDraw paint application.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jkatak/airdraw/internal/store"
)

// SnapshotHandler handles HTTP requests for snapshot resources.
type SnapshotHandler struct {
	store *store.Store
}

// NewSnapshotHandler creates a new SnapshotHandler with the given store.
func NewSnapshotHandler(s *store.Store) *SnapshotHandler {
	return &SnapshotHandler{store: s}
}

// snapshotResponse is the JSON shape of a snapshot.
type snapshotResponse struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

func toSnapshotResponse(sn *store.Snapshot) snapshotResponse {
	return snapshotResponse{
		ID:        sn.ID,
		Path:      sn.Path,
		Source:    string(sn.Source),
		CreatedAt: sn.CreatedAt,
	}
}

// ServeHTTP implements the http.Handler interface and routes requests.
// Expected paths: /api/snapshots or /api/snapshots/{id}
func (h *SnapshotHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/snapshots")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SnapshotHandler) list(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.store.Snapshots().List()
	if err != nil {
		http.Error(w, "Failed to list snapshots", http.StatusInternalServerError)
		return
	}

	response := make([]snapshotResponse, 0, len(snapshots))
	for _, sn := range snapshots {
		response = append(response, toSnapshotResponse(sn))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *SnapshotHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	sn, err := h.store.Snapshots().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Snapshot not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toSnapshotResponse(sn))
}

func (h *SnapshotHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Snapshots().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Snapshot not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete snapshot", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeJSON encodes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
