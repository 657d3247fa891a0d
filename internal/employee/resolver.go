package employee

import (
	"github.com/dfcarvalho/posto/internal/tabular"
)

// Roster export layout, 0-indexed. Unlike the refueling exports there is no
// header heuristic here: the payroll system always emits the same columns.
const (
	nameColumn      = 0
	firstCardColumn = 2
	lastCardColumn  = 4
)

// ResolveRow maps one roster row to directory entries: column 0 is the
// employee name, columns 2-4 hold up to three card ids. Every non-empty id
// yields one entry carrying the same name. A named row without any card id
// resolves to nothing.
func ResolveRow(row tabular.Row) []Entry {
	name := row.At(nameColumn)
	if name == "" {
		return nil
	}

	var entries []Entry

	for col := firstCardColumn; col <= lastCardColumn; col++ {
		if id := row.At(col); id != "" {
			entries = append(entries, Entry{CardID: id, DisplayName: name})
		}
	}

	return entries
}
