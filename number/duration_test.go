package number_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-lodash-utils/number"
)

func TestDurationBetween(t *testing.T) {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		other time.Time
		unit  number.DurationUnit
		want  int64
	}{
		{"seconds", base.Add(90 * time.Second), number.Seconds, 90},
		{"minutes", base.Add(90 * time.Second), number.Minutes, 1},
		{"hours", base.Add(150 * time.Minute), number.Hours, 2},
		{"days", base.Add(36 * time.Hour), number.Days, 1},
		{"weeks", base.AddDate(0, 0, 20), number.Weeks, 2},
		{"months", base.AddDate(0, 3, 0), number.Months, 2},
		{"years", base.AddDate(2, 0, 1), number.Years, 2},
		{"same instant", base, number.Seconds, 0},
		{"sub-second", base.Add(999 * time.Millisecond), number.Seconds, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, number.DurationBetween(base, tc.other, tc.unit))
			assert.Equal(t, tc.want, number.DurationBetween(tc.other, base, tc.unit), "order must not matter")
		})
	}
}

func TestDurationBetweenFractionalSeconds(t *testing.T) {
	a := time.Date(2024, time.January, 1, 0, 0, 0, 900_000_000, time.UTC)
	b := time.Date(2024, time.January, 1, 0, 0, 2, 100_000_000, time.UTC)
	assert.Equal(t, int64(1), number.DurationBetween(a, b, number.Seconds))
	assert.Equal(t, int64(1), number.DurationBetween(b, a, number.Seconds))
}

func TestDurationBetweenFarApart(t *testing.T) {
	a := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(730_485), number.DurationBetween(a, b, number.Days))
	assert.Equal(t, int64(1999), number.DurationBetween(a, b, number.Years), "2000 Gregorian years are shorter than 2000 Julian ones")
}

func TestDurationUnitString(t *testing.T) {
	assert.Equal(t, "days", number.Days.String())
	assert.Equal(t, "years", number.Years.String())
	assert.Equal(t, "DurationUnit(42)", number.DurationUnit(42).String())
}
