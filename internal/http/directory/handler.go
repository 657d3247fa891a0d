package directory

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dfcarvalho/posto/internal/employee"
)

type Handler struct {
	employeeSvc *employee.Service
}

func NewHandler(employeeSvc *employee.Service) *Handler {
	return &Handler{employeeSvc: employeeSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type entryResponse struct {
	CardID      string `json:"card_id"`
	DisplayName string `json:"display_name"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	dir, err := h.employeeSvc.Directory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entries := make([]entryResponse, 0, len(dir))
	for _, e := range dir {
		entries = append(entries, entryResponse{CardID: e.CardID, DisplayName: e.DisplayName})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(entries); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
