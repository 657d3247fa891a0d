// Package dateparse normalizes free-text date values from pump-controller
// exports into UTC instants. Brazilian exports write dates day-first
// (DD/MM/YYYY), so the day-first pattern is always tried before anything
// ISO-like; day and month order is never guessed from magnitude.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Civil-calendar comparisons (day keys, filter ranges) happen in the
// station's regional timezone, regardless of where the service runs.
const RegionalTimezone = "America/Sao_Paulo"

var regional *time.Location

func init() {
	loc, err := time.LoadLocation(RegionalTimezone)
	if err != nil {
		// No tzdata available. Brasília time without DST.
		loc = time.FixedZone("-03", -3*60*60)
	}

	regional = loc
}

var (
	dayFirstRe  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})(?:\s+(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?)?`)
	yearFirstRe = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})(?:\s+(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?)?`)
)

// fallbackLayouts are tried, in order, when neither pattern matches.
var fallbackLayouts = []string{
	time.RFC3339,
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// Parse normalizes an arbitrary date/time string into a UTC instant.
//
// Attempt order: day-first D/M/Y, then year-first Y/M/D, then the fallback
// layouts. Missing time components default to 00:00:00; two-digit years are
// shifted into the 2000s. Parsing never fails: when nothing matches
// (including empty input) the current time is returned and the second result
// is true, so callers can tell a defaulted timestamp from a genuine one.
func Parse(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Now().UTC(), true
	}

	if m := dayFirstRe.FindStringSubmatch(trimmed); m != nil {
		return civilTime(atoi(m[3], true), atoi(m[2], false), atoi(m[1], false), m[4], m[5], m[6]), false
	}

	if m := yearFirstRe.FindStringSubmatch(trimmed); m != nil {
		return civilTime(atoi(m[1], false), atoi(m[2], false), atoi(m[3], false), m[4], m[5], m[6]), false
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, regional); err == nil {
			return t.UTC(), false
		}
	}

	return time.Now().UTC(), true
}

// DayKey returns the YYYY-MM-DD civil day of an instant in the regional
// timezone. Two instants on the same wall-clock day in São Paulo share a
// key even when their UTC dates differ.
func DayKey(t time.Time) string {
	return t.In(regional).Format(time.DateOnly)
}

// civilTime builds an instant from regional wall-clock components.
// Out-of-range components are normalized by time.Date (month 13 rolls into
// the next year), matching how the exports have historically been tolerated.
func civilTime(year, month, day int, hour, minute, sec string) time.Time {
	h := atoi(hour, false)
	m := atoi(minute, false)
	s := atoi(sec, false)

	return time.Date(year, time.Month(month), day, h, m, s, 0, regional).UTC()
}

func atoi(s string, expandYear bool) int {
	n, _ := strconv.Atoi(s)
	if expandYear && n < 100 {
		n += 2000
	}

	return n
}
