package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dfcarvalho/posto/internal/employee"
	"github.com/dfcarvalho/posto/internal/importer"
	"github.com/dfcarvalho/posto/internal/refueling"
)

type Handler struct {
	importSvc    *importer.Service
	refuelingSvc *refueling.Service
	employeeSvc  *employee.Service
	ownerID      string
}

func NewHandler(importSvc *importer.Service, refuelingSvc *refueling.Service, employeeSvc *employee.Service, ownerID string) *Handler {
	return &Handler{
		importSvc:    importSvc,
		refuelingSvc: refuelingSvc,
		employeeSvc:  employeeSvc,
		ownerID:      ownerID,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importFile)
}

type importResponse struct {
	Kind     importer.Kind `json:"kind"`
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
}

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	kind := importer.Kind(r.FormValue("kind"))
	if kind == "" {
		http.Error(w, "kind field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.importSvc.Import(kind, file, h.ownerID)
	if err != nil {
		if errors.Is(err, importer.ErrNoValidData) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	resp := importResponse{Kind: kind, Skipped: result.Skipped}

	switch kind {
	case importer.KindRefuelings:
		if err := h.refuelingSvc.ImportBatch(r.Context(), result.Refuelings); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		resp.Imported = len(result.Refuelings)
	case importer.KindEmployees:
		if err := h.employeeSvc.ImportBatch(r.Context(), result.Employees); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		resp.Imported = len(result.Employees)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
