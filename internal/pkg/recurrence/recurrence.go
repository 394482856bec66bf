// Package recurrence encodes and decodes the weekly recurrence patterns
// attached to recurring schedules. Patterns are canonical single-line RRULE
// strings, e.g. "FREQ=WEEKLY;DTSTART=20240304T000000Z;BYDAY=MO,WE,FR".
package recurrence

import (
	"regexp"
	"strings"
	"time"
)

// Weekday is a two-letter RRULE weekday code.
type Weekday string

const (
	Monday    Weekday = "MO"
	Tuesday   Weekday = "TU"
	Wednesday Weekday = "WE"
	Thursday  Weekday = "TH"
	Friday    Weekday = "FR"
	Saturday  Weekday = "SA"
	Sunday    Weekday = "SU"
)

// canonicalOrder fixes the token order used by Encode (Monday first).
var canonicalOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DaySet is a set of weekdays on which a schedule recurs.
type DaySet map[Weekday]bool

// NewDaySet builds a DaySet from the given weekdays.
func NewDaySet(days ...Weekday) DaySet {
	set := make(DaySet, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

// Contains reports whether the set includes d.
func (s DaySet) Contains(d Weekday) bool {
	return s[d]
}

// Weekdays returns the set's members in canonical Monday-first order.
func (s DaySet) Weekdays() []Weekday {
	out := make([]Weekday, 0, len(s))
	for _, d := range canonicalOrder {
		if s[d] {
			out = append(out, d)
		}
	}
	return out
}

// FromTime maps a time.Weekday to its RRULE code.
func FromTime(d time.Weekday) Weekday {
	// time.Weekday is Sunday-based, canonicalOrder is Monday-based.
	return canonicalOrder[(int(d)+6)%7]
}

// Encode builds the canonical weekly recurrence string for the given weekday
// set, anchored at anchor. The anchor fixes the rule's reference date only;
// the recurring days come exclusively from days. The BYDAY token order is
// always Monday through Sunday, so equal sets encode to equal day lists.
func Encode(days DaySet, anchor time.Time) (string, error) {
	if len(days) == 0 {
		return "", ErrEmptyDaySet
	}

	tokens := make([]string, 0, len(days))
	for _, d := range days.Weekdays() {
		tokens = append(tokens, string(d))
	}

	var b strings.Builder
	b.WriteString("FREQ=WEEKLY")
	b.WriteString(";DTSTART=")
	b.WriteString(anchor.UTC().Format("20060102T150405Z"))
	b.WriteString(";BYDAY=")
	b.WriteString(strings.Join(tokens, ","))
	return b.String(), nil
}

// byDayRe recovers the BYDAY field from strings that do not parse as a
// well-formed field list (truncated rules, bare "BYDAY=..." fragments).
var byDayRe = regexp.MustCompile(`(?i)BYDAY=([0-6A-Za-z,]+)`)

// Decode extracts the weekday set from a recurrence pattern. Two strategies
// run in order, first success wins: a field-by-field parse of a well-formed
// rule, then a regex recovery of the BYDAY field from malformed input. Day
// tokens may be two-letter codes or numeric indices (0=Monday .. 6=Sunday).
// Decode never fails; when no weekday field can be found it returns an
// empty set.
func Decode(pattern string) DaySet {
	if set, ok := decodeFields(pattern); ok {
		return set
	}
	if m := byDayRe.FindStringSubmatch(pattern); m != nil {
		return parseDayList(m[1])
	}
	return DaySet{}
}

// decodeFields parses pattern as a semicolon-separated KEY=VALUE list. It
// reports false when the structure does not hold, handing over to the regex
// fallback.
func decodeFields(pattern string) (DaySet, bool) {
	for _, field := range strings.Split(pattern, ";") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, false
		}
		if strings.EqualFold(strings.TrimSpace(key), "BYDAY") {
			return parseDayList(value), true
		}
	}
	return nil, false
}

func parseDayList(list string) DaySet {
	set := DaySet{}
	for _, token := range strings.Split(list, ",") {
		token = strings.ToUpper(strings.TrimSpace(token))
		if len(token) == 1 && token[0] >= '0' && token[0] <= '6' {
			set[canonicalOrder[token[0]-'0']] = true
			continue
		}
		for _, d := range canonicalOrder {
			if token == string(d) {
				set[d] = true
				break
			}
		}
	}
	return set
}
