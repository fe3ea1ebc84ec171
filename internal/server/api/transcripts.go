package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jkatak/airdraw/internal/store"
)

// TranscriptHandler handles HTTP requests for transcript resources.
type TranscriptHandler struct {
	store *store.Store
}

// NewTranscriptHandler creates a new TranscriptHandler with the given store.
func NewTranscriptHandler(s *store.Store) *TranscriptHandler {
	return &TranscriptHandler{store: s}
}

// transcriptResponse is the JSON shape of a transcript.
type transcriptResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Language  string    `json:"language"`
	AudioPath string    `json:"audioPath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTranscriptResponse(t *store.Transcript) transcriptResponse {
	return transcriptResponse{
		ID:        t.ID,
		Text:      t.Text,
		Language:  t.Language,
		AudioPath: t.AudioPath,
		CreatedAt: t.CreatedAt,
	}
}

// ServeHTTP implements the http.Handler interface and routes requests.
// Expected paths: /api/transcripts or /api/transcripts/{id}
func (h *TranscriptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/transcripts")
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

func (h *TranscriptHandler) list(w http.ResponseWriter, r *http.Request) {
	transcripts, err := h.store.Transcripts().List()
	if err != nil {
		http.Error(w, "Failed to list transcripts", http.StatusInternalServerError)
		return
	}

	response := make([]transcriptResponse, 0, len(transcripts))
	for _, t := range transcripts {
		response = append(response, toTranscriptResponse(t))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *TranscriptHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	t, err := h.store.Transcripts().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Transcript not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get transcript", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toTranscriptResponse(t))
}

func (h *TranscriptHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Transcripts().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Transcript not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete transcript", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
