// Package employee holds the card directory: the mapping from physical fuel
// card ids to employee names. Several cards can belong to one person, which
// is how reports collapse multiple attendant slots into a single identity.
package employee

// Entry associates one card id with a display name. CardID is the
// directory's upsert key.
type Entry struct {
	CardID      string
	DisplayName string
}

// Directory is the ordered card-id lookup table. Order is import order:
// re-imported ids keep their position, new ids append.
type Directory []Entry

// Merge folds a batch of freshly resolved entries into the directory.
// Last write wins per card id, so re-importing a corrected roster
// supersedes stale names. The input directory is not mutated.
//
// Merge is the in-memory form of this contract; store.UpsertEntries is its
// persistent twin (ON CONFLICT upsert with the same last-write-wins order),
// used by callers that keep the directory in Postgres.
func Merge(existing Directory, batch []Entry) Directory {
	merged := make(Directory, len(existing))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, e := range merged {
		index[e.CardID] = i
	}

	for _, e := range batch {
		if i, ok := index[e.CardID]; ok {
			merged[i] = e
			continue
		}

		index[e.CardID] = len(merged)
		merged = append(merged, e)
	}

	return merged
}

// NameMap builds the card-id to display-name lookup used for identity
// resolution.
func (d Directory) NameMap() map[string]string {
	m := make(map[string]string, len(d))
	for _, e := range d {
		m[e.CardID] = e.DisplayName
	}

	return m
}

// Resolve returns the display name for a card id. Cards absent from the
// directory resolve to the raw id itself, so every refueling maps to some
// identity even when the roster was never imported. Callers resolving many
// ids should build a NameMap once instead.
func (d Directory) Resolve(cardID string) string {
	for _, e := range d {
		if e.CardID == cardID {
			return e.DisplayName
		}
	}

	return cardID
}
