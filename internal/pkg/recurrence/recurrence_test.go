package recurrence

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_CanonicalOrder(t *testing.T) {
	t.Parallel()
	anchor := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	// Same set, different construction order, must encode identically.
	a, err := Encode(NewDaySet(Friday, Monday, Wednesday), anchor)
	require.NoError(t, err)
	b, err := Encode(NewDaySet(Wednesday, Friday, Monday), anchor)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "FREQ=WEEKLY;DTSTART=20240304T000000Z;BYDAY=MO,WE,FR", a)
}

func TestEncode_EmptySet(t *testing.T) {
	t.Parallel()
	_, err := Encode(DaySet{}, time.Now())
	assert.ErrorIs(t, err, ErrEmptyDaySet)
}

func TestDecode_RoundTrip_AllSubsets(t *testing.T) {
	t.Parallel()
	all := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	anchor := time.Date(2023, 11, 20, 8, 30, 0, 0, time.UTC)

	// Every non-empty subset of the week must survive a round trip.
	for mask := 1; mask < 1<<7; mask++ {
		set := DaySet{}
		for i, d := range all {
			if mask&(1<<i) != 0 {
				set[d] = true
			}
		}

		pattern, err := Encode(set, anchor)
		require.NoError(t, err, "mask %b", mask)
		assert.Equal(t, set, Decode(pattern), "mask %b pattern %q", mask, pattern)
	}
}

func TestDecode_MalformedFallback(t *testing.T) {
	t.Parallel()

	// Bare BYDAY fragment with no other rule fields.
	got := Decode("BYDAY=MO,WE,FR")
	assert.Equal(t, NewDaySet(Monday, Wednesday, Friday), got)
}

func TestDecode_NumericDayIndices(t *testing.T) {
	t.Parallel()

	// 0=Monday .. 6=Sunday.
	got := Decode("FREQ=WEEKLY;BYDAY=0,2,6")
	assert.Equal(t, NewDaySet(Monday, Wednesday, Sunday), got)
}

func TestDecode_Garbage(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"not a rule at all",
		"FREQ=WEEKLY;DTSTART=20240101T000000Z",
		"BYDAY=",
		"BYDAY=XX,99",
	}
	for _, pattern := range cases {
		t.Run(fmt.Sprintf("%q", pattern), func(t *testing.T) {
			assert.Empty(t, Decode(pattern))
		})
	}
}

func TestDecode_TruncatedRuleRecoversDays(t *testing.T) {
	t.Parallel()

	// Structurally broken (a field without '=') but the weekday list is
	// still recoverable.
	got := Decode("FREQ=WEEKLY garbage BYDAY=TU,TH trailing")
	assert.Equal(t, NewDaySet(Tuesday, Thursday), got)
}

func TestFromTime(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Monday, FromTime(time.Monday))
	assert.Equal(t, Sunday, FromTime(time.Sunday))
	assert.Equal(t, Saturday, FromTime(time.Saturday))
}
