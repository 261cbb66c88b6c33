// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discordian converts proleptic-Gregorian civil dates to the
// Discordian calendar and renders them as text. The Discordian year has
// 5 seasons of 73 days and a 5-day week; leap years insert the
// intercalary St. Tib's Day between the 59th and 60th day of Chaos.
package discordian

import (
	"errors"
	"fmt"
)

// CurseOfGreyface is the offset between civil years and the Year of Our
// Lady of Discord. The Curse of Greyface occurred in 1166 B.C.E.
const CurseOfGreyface = 1166

const (
	seasonDays = 73
	weekDays   = 5

	// stTibsOrdinal is the 1-based civil day-of-year that becomes
	// St. Tib's Day in leap years (February 29).
	stTibsOrdinal = 60
)

// ErrInvalidDayOfYear reports a day-of-year outside [1, 365], or
// [1, 366] for leap years.
var ErrInvalidDayOfYear = errors.New("day of year out of range")

// Season is one of the five 73-day divisions of the Discordian year.
type Season int

// The five seasons, in year order.
const (
	Chaos Season = iota
	Discord
	Confusion
	Bureaucracy
	TheAftermath
)

var seasonNames = [...]string{"Chaos", "Discord", "Confusion", "Bureaucracy", "The Aftermath"}

func (s Season) String() string {
	if s < Chaos || s > TheAftermath {
		return fmt.Sprintf("Season(%d)", int(s))
	}
	return seasonNames[s]
}

// Weekday is a day of the five-day Discordian week.
type Weekday int

// The five weekdays, in week order.
const (
	Sweetmorn Weekday = iota
	Boomtime
	Pungenday
	PricklePrickle
	SettingOrange
)

var weekdayNames = [...]string{"Sweetmorn", "Boomtime", "Pungenday", "Prickle-Prickle", "Setting Orange"}

func (w Weekday) String() string {
	if w < Sweetmorn || w > SettingOrange {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// Date is a Discordian calendar date. It is an immutable value produced
// by FromCivil or FromDate; on St. Tib's Day the Season and DayOfSeason
// fields are zero and only YOLD is meaningful.
type Date struct {
	// Season is the season the day falls in.
	Season Season `json:"season" yaml:"season"`

	// DayOfSeason is the 1-based day within the season (1..73).
	DayOfSeason int `json:"day_of_season" yaml:"day_of_season"`

	// YOLD is the Year of Our Lady of Discord: civil year + 1166.
	YOLD int `json:"yold" yaml:"yold"`

	// StTibs marks the leap-year intercalary day, which belongs to no
	// season and has no day-of-season number.
	StTibs bool `json:"st_tibs,omitempty" yaml:"st_tibs,omitempty"`

	// offset is the 0-based day count into the 365-day Discordian year
	// after the leap-day adjustment. It drives the weekday and holyday
	// lookups and is not part of the public representation.
	offset int
}

// Datelike is the minimal capability set a civil date value needs for
// conversion. time.Time satisfies it.
type Datelike interface {
	Year() int
	YearDay() int
}

// IsLeap reports whether a civil year is a leap year under the
// proleptic Gregorian rule.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// FromCivil converts a civil date given as year, 1-based day-of-year
// and leap status. It returns ErrInvalidDayOfYear if dayOfYear is
// outside [1, 365], or [1, 366] when leap is true. Consistency between
// leap and the year is the caller's responsibility; the flag is taken
// at face value so that callers with their own calendar rules are not
// second-guessed.
func FromCivil(year, dayOfYear int, leap bool) (Date, error) {
	limit := 365
	if leap {
		limit = 366
	}
	if dayOfYear < 1 || dayOfYear > limit {
		return Date{}, fmt.Errorf("%w: %d (year %d, leap %t)", ErrInvalidDayOfYear, dayOfYear, year, leap)
	}
	return fromOrdinal(year, dayOfYear, leap), nil
}

// FromDate converts any Datelike civil date, deriving the leap status
// from the year. There is no failure path: a date library's year and
// day-of-year are consistent by construction.
func FromDate(d Datelike) Date {
	return fromOrdinal(d.Year(), d.YearDay(), IsLeap(d.Year()))
}

func fromOrdinal(year, dayOfYear int, leap bool) Date {
	yold := year + CurseOfGreyface

	if leap && dayOfYear == stTibsOrdinal {
		return Date{YOLD: yold, StTibs: true}
	}

	n := dayOfYear
	if leap && dayOfYear > stTibsOrdinal {
		n--
	}

	return Date{
		Season:      Season((n - 1) / seasonDays),
		DayOfSeason: (n-1)%seasonDays + 1,
		YOLD:        yold,
		offset:      n - 1,
	}
}

// Weekday returns the day of the five-day week. St. Tib's Day belongs
// to no week; the result is meaningless when StTibs is set.
func (d Date) Weekday() Weekday {
	return Weekday(d.offset % weekDays)
}
