package importer

import "errors"

// Kind selects which resolver an uploaded file goes through.
type Kind string

const (
	// KindRefuelings is a pump-controller export of dispensing events.
	KindRefuelings Kind = "refuelings"
	// KindEmployees is a payroll roster mapping card ids to names.
	KindEmployees Kind = "employees"
)

// ErrNoValidData is returned when a file decodes to nothing usable: fewer
// than two non-blank lines, or zero rows surviving resolution. Nothing is
// committed on this path.
var ErrNoValidData = errors.New("no valid data found in file")
