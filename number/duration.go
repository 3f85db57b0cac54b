package number

import (
	"fmt"
	"time"
)

// DurationUnit selects the granularity of [DurationBetween].
type DurationUnit int

const (
	Seconds DurationUnit = iota
	Minutes
	Hours
	Days
	Weeks
	Months // average Gregorian month, 30.436875 days
	Years  // Julian year, 365.25 days
)

var unitSeconds = [...]int64{
	Seconds: 1,
	Minutes: 60,
	Hours:   3_600,
	Days:    86_400,
	Weeks:   604_800,
	Months:  2_629_746,
	Years:   31_557_600,
}

var unitNames = [...]string{
	Seconds: "seconds",
	Minutes: "minutes",
	Hours:   "hours",
	Days:    "days",
	Weeks:   "weeks",
	Months:  "months",
	Years:   "years",
}

func (u DurationUnit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("DurationUnit(%d)", int(u))
	}
	return unitNames[u]
}

// DurationBetween returns the number of whole units between a and b,
// regardless of their order. An unknown unit counts seconds.
//
//	DurationBetween(t, t.Add(36*time.Hour), Days) // → 1
func DurationBetween(a, b time.Time, unit DurationUnit) int64 {
	secs := b.Unix() - a.Unix()
	nanos := int64(b.Nanosecond()) - int64(a.Nanosecond())
	if secs < 0 || (secs == 0 && nanos < 0) {
		secs, nanos = -secs, -nanos
	}
	if nanos < 0 {
		secs--
	}

	per := int64(1)
	if unit >= 0 && int(unit) < len(unitSeconds) {
		per = unitSeconds[unit]
	}
	return secs / per
}
