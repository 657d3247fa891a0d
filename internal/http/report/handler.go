package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dfcarvalho/posto/internal/employee"
	"github.com/dfcarvalho/posto/internal/refueling"
	"github.com/dfcarvalho/posto/internal/report"
)

type Handler struct {
	refuelingSvc *refueling.Service
	employeeSvc  *employee.Service
	pageSize     int
}

func NewHandler(refuelingSvc *refueling.Service, employeeSvc *employee.Service, pageSize int) *Handler {
	if pageSize < 1 {
		pageSize = report.DefaultPageSize
	}

	return &Handler{
		refuelingSvc: refuelingSvc,
		employeeSvc:  employeeSvc,
		pageSize:     pageSize,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.report)
}

type eventResponse struct {
	ID            uuid.UUID `json:"id"`
	CardID        string    `json:"card_id"`
	Timestamp     time.Time `json:"timestamp"`
	TimeOfDay     string    `json:"time_of_day,omitempty"`
	Nozzle        string    `json:"nozzle"`
	Amount        float64   `json:"amount"`
	Volume        float64   `json:"volume"`
	DateDefaulted bool      `json:"date_defaulted,omitempty"`
}

type groupResponse struct {
	DisplayName string          `json:"display_name"`
	CardIDs     []string        `json:"card_ids"`
	Items       []eventResponse `json:"items"`
	TotalLiters float64         `json:"total_liters"`
	TotalValue  float64         `json:"total_value"`
	Count       int             `json:"count"`
}

type totalsResponse struct {
	TotalLiters float64 `json:"total_liters"`
	TotalValue  float64 `json:"total_value"`
	TotalCount  int     `json:"total_count"`
}

type reportResponse struct {
	Groups     []groupResponse `json:"groups"`
	Totals     totalsResponse  `json:"totals"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
}

// report computes one view over the current snapshot. Query parameters:
// cards (comma-separated), start, end (YYYY-MM-DD civil days), nozzle
// (substring), sort (timestamp|nozzle|amount), order (asc|desc), page.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	events, err := h.refuelingSvc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dir, err := h.employeeSvc.Directory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()

	filter := report.Filter{
		StartDay: q.Get("start"),
		EndDay:   q.Get("end"),
		Nozzle:   q.Get("nozzle"),
	}

	if cards := q.Get("cards"); cards != "" {
		for _, id := range strings.Split(cards, ",") {
			if id = strings.TrimSpace(id); id != "" {
				filter.CardIDs = append(filter.CardIDs, id)
			}
		}
	}

	sortBy := report.Sort{
		Key:  report.SortByTimestamp,
		Desc: true,
	}

	switch report.SortKey(q.Get("sort")) {
	case report.SortByNozzle:
		sortBy.Key = report.SortByNozzle
	case report.SortByAmount:
		sortBy.Key = report.SortByAmount
	}

	if q.Get("order") == "asc" {
		sortBy.Desc = false
	}

	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}

	rep := report.Build(events, dir, filter, sortBy)
	groups := report.Paginate(rep.Groups, page, h.pageSize)

	resp := reportResponse{
		Groups: make([]groupResponse, 0, len(groups)),
		Totals: totalsResponse{
			TotalLiters: rep.Totals.TotalLiters,
			TotalValue:  rep.Totals.TotalValue,
			TotalCount:  rep.Totals.TotalCount,
		},
		Page:       page,
		TotalPages: report.TotalPages(len(rep.Groups), h.pageSize),
	}

	for _, g := range groups {
		resp.Groups = append(resp.Groups, toGroupResponse(g))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toGroupResponse(g report.Group) groupResponse {
	resp := groupResponse{
		DisplayName: g.DisplayName,
		CardIDs:     g.CardIDs,
		Items:       make([]eventResponse, 0, len(g.Items)),
		TotalLiters: g.TotalLiters,
		TotalValue:  g.TotalValue,
		Count:       g.Count,
	}

	for _, ev := range g.Items {
		resp.Items = append(resp.Items, eventResponse{
			ID:            ev.ID,
			CardID:        ev.CardID,
			Timestamp:     ev.Timestamp,
			TimeOfDay:     ev.TimeOfDay,
			Nozzle:        ev.Nozzle,
			Amount:        ev.Amount,
			Volume:        ev.Volume,
			DateDefaulted: ev.DateDefaulted,
		})
	}

	return resp
}
