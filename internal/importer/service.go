package importer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dfcarvalho/posto/internal/employee"
	"github.com/dfcarvalho/posto/internal/encoding"
	"github.com/dfcarvalho/posto/internal/refueling"
	"github.com/dfcarvalho/posto/internal/tabular"
)

// Result is what one file import produced. Only the field matching the
// requested Kind is populated. Skipped counts rows that were read but
// dropped by the resolver; a skipped row never aborts the import.
type Result struct {
	Refuelings []refueling.Refueling
	Employees  []employee.Entry
	Skipped    int
}

type Service struct {
	resolver *refueling.Resolver
}

func NewService() *Service {
	return &Service{
		resolver: refueling.NewResolver(),
	}
}

// Import decodes raw file content and resolves it into domain records.
// The reader is consumed fully; charset is normalized before decoding.
// Returns ErrNoValidData when nothing usable came out of the file.
func (s *Service) Import(kind Kind, r io.Reader, ownerID string) (*Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	text, err := encoding.ToUTF8(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize encoding: %w", err)
	}

	table := tabular.Decode(text)
	if table.Empty() {
		return nil, ErrNoValidData
	}

	switch kind {
	case KindRefuelings:
		return s.importRefuelings(table, ownerID)
	case KindEmployees:
		return s.importEmployees(table)
	default:
		return nil, fmt.Errorf("unknown import kind: %s", kind)
	}
}

func (s *Service) importRefuelings(table tabular.Table, ownerID string) (*Result, error) {
	result := &Result{}

	for i, row := range table.Rows {
		rec, ok := s.resolver.Resolve(row, ownerID)
		if !ok {
			result.Skipped++
			slog.Warn("skipping refueling row", "line", i+2, "reason", "no valid amount or volume")

			continue
		}

		result.Refuelings = append(result.Refuelings, rec)
	}

	if len(result.Refuelings) == 0 {
		return nil, ErrNoValidData
	}

	return result, nil
}

func (s *Service) importEmployees(table tabular.Table) (*Result, error) {
	result := &Result{}

	for i, row := range table.Rows {
		entries := employee.ResolveRow(row)
		if len(entries) == 0 {
			result.Skipped++
			slog.Warn("skipping roster row", "line", i+2, "reason", "no name or no card ids")

			continue
		}

		result.Employees = append(result.Employees, entries...)
	}

	if len(result.Employees) == 0 {
		return nil, ErrNoValidData
	}

	return result, nil
}
