// Package report is the read side of the pipeline: it filters, sorts, and
// groups refueling snapshots into the aggregates the presentation layer
// renders. Every function here is pure — it receives snapshots, returns
// fresh values, and retains nothing.
package report

import (
	"sort"
	"strings"

	"github.com/dfcarvalho/posto/internal/dateparse"
	"github.com/dfcarvalho/posto/internal/employee"
	"github.com/dfcarvalho/posto/internal/refueling"
)

// DefaultPageSize is the number of groups per page.
const DefaultPageSize = 10

// SortKey selects the field a view is ordered by.
type SortKey string

const (
	SortByTimestamp SortKey = "timestamp"
	SortByNozzle    SortKey = "nozzle"
	SortByAmount    SortKey = "amount"
)

// Sort describes the requested ordering. Sorting is stable: equal keys keep
// their encounter order regardless of direction.
type Sort struct {
	Key  SortKey
	Desc bool
}

// Filter restricts which events enter a view. All criteria are optional
// and AND-combined.
type Filter struct {
	// CardIDs limits the view to the given card ids. Empty means all.
	CardIDs []string
	// StartDay and EndDay are inclusive YYYY-MM-DD bounds compared on the
	// regional civil day key. Either bound alone is valid.
	StartDay string
	EndDay   string
	// Nozzle is a case-insensitive substring match.
	Nozzle string
}

// Group is the per-identity aggregate of a view. Not persisted; rebuilt
// from scratch on every call.
type Group struct {
	DisplayName string
	// CardIDs are the distinct card ids observed under this identity in
	// the current view, in first-encounter order.
	CardIDs     []string
	Items       []refueling.Refueling
	TotalLiters float64
	TotalValue  float64
	Count       int
}

// Totals aggregates the whole filtered sequence, ungrouped. By construction
// it equals the sum over all groups.
type Totals struct {
	TotalLiters float64
	TotalValue  float64
	TotalCount  int
}

// Report is one computed view.
type Report struct {
	Groups []Group
	Totals Totals
}

// Build filters and sorts the event snapshot, then groups it by resolved
// identity. Group order follows the first encounter of each identity in the
// filtered, sorted sequence.
func Build(events []refueling.Refueling, dir employee.Directory, filter Filter, sortBy Sort) Report {
	filtered := applyFilter(events, filter)
	sortEvents(filtered, sortBy)

	names := dir.NameMap()

	var (
		report   Report
		groupIdx = make(map[string]int)
		seen     = make(map[string]map[string]bool)
	)

	for _, ev := range filtered {
		name, ok := names[ev.CardID]
		if !ok {
			name = ev.CardID
		}

		i, ok := groupIdx[name]
		if !ok {
			i = len(report.Groups)
			groupIdx[name] = i
			seen[name] = make(map[string]bool)
			report.Groups = append(report.Groups, Group{DisplayName: name})
		}

		g := &report.Groups[i]
		g.Items = append(g.Items, ev)
		g.TotalLiters += ev.Volume
		g.TotalValue += ev.Amount
		g.Count++

		if !seen[name][ev.CardID] {
			seen[name][ev.CardID] = true
			g.CardIDs = append(g.CardIDs, ev.CardID)
		}

		report.Totals.TotalLiters += ev.Volume
		report.Totals.TotalValue += ev.Amount
		report.Totals.TotalCount++
	}

	return report
}

// Paginate slices the group list into 1-based pages of the given size.
// Out-of-range pages yield an empty slice, never a wraparound.
func Paginate(groups []Group, page, pageSize int) []Group {
	if page < 1 || pageSize < 1 {
		return nil
	}

	start := (page - 1) * pageSize
	if start >= len(groups) {
		return nil
	}

	end := start + pageSize
	if end > len(groups) {
		end = len(groups)
	}

	return groups[start:end]
}

// TotalPages returns how many pages the group list spans.
func TotalPages(groupCount, pageSize int) int {
	if pageSize < 1 {
		return 0
	}

	return (groupCount + pageSize - 1) / pageSize
}

func applyFilter(events []refueling.Refueling, f Filter) []refueling.Refueling {
	cards := make(map[string]bool, len(f.CardIDs))
	for _, id := range f.CardIDs {
		cards[id] = true
	}

	nozzle := strings.ToLower(f.Nozzle)

	out := make([]refueling.Refueling, 0, len(events))

	for _, ev := range events {
		if len(cards) > 0 && !cards[ev.CardID] {
			continue
		}

		if f.StartDay != "" || f.EndDay != "" {
			day := dateparse.DayKey(ev.Timestamp)
			if f.StartDay != "" && day < f.StartDay {
				continue
			}

			if f.EndDay != "" && day > f.EndDay {
				continue
			}
		}

		if nozzle != "" && !strings.Contains(strings.ToLower(ev.Nozzle), nozzle) {
			continue
		}

		out = append(out, ev)
	}

	return out
}

func sortEvents(events []refueling.Refueling, s Sort) {
	less := func(a, b refueling.Refueling) bool {
		switch s.Key {
		case SortByNozzle:
			return a.Nozzle < b.Nozzle
		case SortByAmount:
			return a.Amount < b.Amount
		default:
			return a.Timestamp.Before(b.Timestamp)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if s.Desc {
			return less(events[j], events[i])
		}

		return less(events[i], events[j])
	})
}
