// Package tabular splits raw delimited export text into a header row and
// data rows. The exports come from several pump-controller vendors and do
// not agree on delimiter, quoting, or casing, so decoding is best effort:
// sniff the delimiter from the first line, lower-case the headers, and hand
// each row back both positionally and keyed by header.
package tabular

import (
	"strings"
)

// Table is the decoded form of one export file.
type Table struct {
	Headers []string
	Rows    []Row
}

// Empty reports whether decoding found no usable data
// (fewer than two non-blank lines).
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Row is one decoded data row. Values are trimmed and unquoted; byHeader
// indexes them by the lower-cased header name.
type Row struct {
	Values   []string
	byHeader map[string]string
}

// At returns the positional value at 0-based index i, or "" when the row is
// shorter than that.
func (r Row) At(i int) string {
	if i < 0 || i >= len(r.Values) {
		return ""
	}

	return r.Values[i]
}

// Get returns the first non-empty value among the given header names, in
// order. Header aliases are how the decoder copes with vendors naming the
// same column differently.
func (r Row) Get(names ...string) string {
	for _, name := range names {
		if v := r.byHeader[name]; v != "" {
			return v
		}
	}

	return ""
}

const bom = "\ufeff"

// Decode splits raw file text into headers and rows.
//
// A leading BOM is stripped, lines are split on CR/LF and blank lines
// dropped. At least one header line and one data line are required;
// anything less decodes to an empty Table. The delimiter is sniffed from
// the first line: ';' wins when it appears more often than ','.
// Sniffing does not account for quoting, so a quoted comma inside a
// semicolon-delimited first line can skew the count. Known limitation.
func Decode(text string) Table {
	text = strings.TrimPrefix(text, bom)

	var lines []string

	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < 2 {
		return Table{}
	}

	delim := sniffDelimiter(lines[0])

	headers := splitLine(lines[0], delim)
	for i, h := range headers {
		headers[i] = strings.ToLower(h)
	}

	rows := make([]Row, 0, len(lines)-1)

	for _, line := range lines[1:] {
		values := splitLine(line, delim)

		byHeader := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				byHeader[h] = values[i]
			}
		}

		rows = append(rows, Row{Values: values, byHeader: byHeader})
	}

	return Table{Headers: headers, Rows: rows}
}

func sniffDelimiter(line string) string {
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ";"
	}

	return ","
}

func splitLine(line, delim string) []string {
	parts := strings.Split(line, delim)
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `'"`)
	}

	return parts
}
