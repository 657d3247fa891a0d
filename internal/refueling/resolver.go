package refueling

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dfcarvalho/posto/internal/dateparse"
	"github.com/dfcarvalho/posto/internal/tabular"
)

// Rules describes how raw export columns map onto refueling fields.
// Each field has an ordered chain of sources, tried first to last:
// a fixed positional column, then header-name aliases, then a default.
// Keeping the chains in one table lets the heuristics evolve without
// touching the resolution mechanics.
type Rules struct {
	// CardIDColumn is the 0-based positional column holding the attendant
	// card id. It is used only when the row has more columns than the
	// index, which in practice pins it to the wide 13-column vendor layout.
	CardIDColumn  int
	CardIDHeaders []string
	CardIDDefault string

	DateHeaders []string

	// TimeColumn is the positional column carrying a separate
	// time-of-day value in the wide layout.
	TimeColumn int

	NozzleHeaders []string
	NozzleDefault string

	AmountHeaders []string
	VolumeHeaders []string
}

// DefaultRules matches the column contracts of the exports seen so far.
var DefaultRules = Rules{
	CardIDColumn:  12,
	CardIDHeaders: []string{"id_frentista", "frentista"},
	CardIDDefault: "N/A",
	DateHeaders:   []string{"data", "data_hora", "date", "timestamp"},
	TimeColumn:    9,
	NozzleHeaders: []string{"bico", "id_bico"},
	NozzleDefault: "B?",
	AmountHeaders: []string{"valor", "total", "price"},
	VolumeHeaders: []string{"litros", "volume", "quantidade", "liters"},
}

// Resolver turns decoded rows into refueling records.
type Resolver struct {
	rules Rules
}

func NewResolver() *Resolver {
	return &Resolver{rules: DefaultRules}
}

func NewResolverWithRules(rules Rules) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve maps one decoded row to a refueling record. The second result is
// false when the row must be dropped: a row is kept only if at least one of
// amount/volume parsed to a valid number. A file with neither column
// therefore yields nothing, which is what lets the importer reject
// unrelated CSVs outright.
func (r *Resolver) Resolve(row tabular.Row, ownerID string) (Refueling, bool) {
	amount, amountOK := parseNumber(row.Get(r.rules.AmountHeaders...))
	volume, volumeOK := parseNumber(row.Get(r.rules.VolumeHeaders...))

	if !amountOK && !volumeOK {
		return Refueling{}, false
	}

	// Monetary values carry 2-decimal semantics; liters keep the full
	// precision the pump reported.
	amountVal, _ := amount.Round(2).Float64()
	volumeVal, _ := volume.Float64()

	ts, defaulted := dateparse.Parse(row.Get(r.rules.DateHeaders...))

	return Refueling{
		ID:            uuid.New(),
		CardID:        r.cardID(row),
		Timestamp:     ts,
		TimeOfDay:     r.timeOfDay(row),
		Nozzle:        r.nozzle(row),
		Amount:        amountVal,
		Volume:        volumeVal,
		OwnerID:       ownerID,
		DateDefaulted: defaulted,
	}, true
}

// cardID prefers the positional column of the wide vendor layout. The value
// is taken verbatim when the row is wide enough, even if empty; narrower
// rows fall back to header lookup, then to the "unassigned" default.
func (r *Resolver) cardID(row tabular.Row) string {
	if len(row.Values) > r.rules.CardIDColumn {
		return row.At(r.rules.CardIDColumn)
	}

	if v := row.Get(r.rules.CardIDHeaders...); v != "" {
		return v
	}

	return r.rules.CardIDDefault
}

func (r *Resolver) timeOfDay(row tabular.Row) string {
	if len(row.Values) > r.rules.TimeColumn {
		return row.At(r.rules.TimeColumn)
	}

	return ""
}

func (r *Resolver) nozzle(row tabular.Row) string {
	if v := row.Get(r.rules.NozzleHeaders...); v != "" {
		return v
	}

	return r.rules.NozzleDefault
}

// parseNumber coerces a locale-formatted numeric cell. The exports write
// decimals with a comma ("42,50"), so commas become periods before parsing.
// A missing or empty cell is invalid, as is an unparseable one; invalid
// fields coerce to zero on retained rows, and the caller drops the row
// when both numeric fields are invalid.
func parseNumber(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Decimal{}, false
	}

	clean := strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}
