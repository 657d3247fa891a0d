package refueling

import (
	"time"

	"github.com/google/uuid"
)

// Refueling is one dispensing event resolved from an import row.
type Refueling struct {
	ID     uuid.UUID
	CardID string
	// Timestamp is the UTC instant of the event. Range filtering and
	// display both interpret it in the regional civil timezone.
	Timestamp time.Time
	// TimeOfDay preserves the original textual time column verbatim when
	// the source splits date and time into separate columns. Kept for
	// display only, never reparsed.
	TimeOfDay string
	Nozzle    string
	Amount    float64
	Volume    float64
	// OwnerID records which session imported the event. Provenance only.
	OwnerID string
	// DateDefaulted marks events whose date could not be parsed and was
	// substituted with the import time.
	DateDefaulted bool
}
