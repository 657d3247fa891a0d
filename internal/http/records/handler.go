package records

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dfcarvalho/posto/internal/refueling"
)

type Handler struct {
	refuelingSvc *refueling.Service
}

func NewHandler(refuelingSvc *refueling.Service) *Handler {
	return &Handler{refuelingSvc: refuelingSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Delete("/", h.reset)
}

type resetRequest struct {
	Confirmation string `json:"confirmation"`
}

// reset wipes all refueling records. The body must carry the typed
// confirmation phrase; anything else leaves state untouched.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.refuelingSvc.Reset(r.Context(), req.Confirmation); err != nil {
		if errors.Is(err, refueling.ErrConfirmationMismatch) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
