// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discordian

import (
	"errors"
	"testing"
	"time"
)

func TestFromDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "day one of the calendar",
			date: time.Date(-1166, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: "Sweetmorn, the 1st day of Chaos in the YOLD 0",
		},
		{
			name: "ordinary day late in the year",
			date: time.Date(2017, time.November, 4, 0, 0, 0, 0, time.UTC),
			want: "Pungenday, the 16th day of The Aftermath in the YOLD 3183",
		},
		{
			name: "day before St. Tib's",
			date: time.Date(2000, time.February, 28, 0, 0, 0, 0, time.UTC),
			want: "Prickle-Prickle, the 59th day of Chaos in the YOLD 3166",
		},
		{
			name: "St. Tib's Day",
			date: time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC),
			want: "St. Tib's Day, the YOLD 3166",
		},
		{
			name: "day after St. Tib's",
			date: time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC),
			want: "Setting Orange, the 60th day of Chaos in the YOLD 3166",
		},
		{
			name: "february 28 of a non-leap century year",
			date: time.Date(1066, time.February, 28, 0, 0, 0, 0, time.UTC),
			want: "Prickle-Prickle, the 59th day of Chaos in the YOLD 2232",
		},
		{
			name: "march 1 of a non-leap century year",
			date: time.Date(1066, time.March, 1, 0, 0, 0, 0, time.UTC),
			want: "Setting Orange, the 60th day of Chaos in the YOLD 2232",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDate(tt.date).String()
			if got != tt.want {
				t.Errorf("FromDate(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestFromCivil(t *testing.T) {
	tests := []struct {
		name      string
		year, day int
		leap      bool
		want      Date
	}{
		{
			name: "first day of the year",
			year: 2023, day: 1,
			want: Date{Season: Chaos, DayOfSeason: 1, YOLD: 3189},
		},
		{
			name: "last day of the year",
			year: 2023, day: 365,
			want: Date{Season: TheAftermath, DayOfSeason: 73, YOLD: 3189},
		},
		{
			name: "leap day is St. Tib's",
			year: 2020, day: 60, leap: true,
			want: Date{YOLD: 3186, StTibs: true},
		},
		{
			name: "day after leap day shifts back",
			year: 2020, day: 61, leap: true,
			want: Date{Season: Chaos, DayOfSeason: 60, YOLD: 3186},
		},
		{
			name: "last day of a leap year",
			year: 2020, day: 366, leap: true,
			want: Date{Season: TheAftermath, DayOfSeason: 73, YOLD: 3186},
		},
		{
			name: "day 60 of a non-leap year is not St. Tib's",
			year: 2023, day: 60,
			want: Date{Season: Chaos, DayOfSeason: 60, YOLD: 3189},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromCivil(tt.year, tt.day, tt.leap)
			if err != nil {
				t.Fatalf("FromCivil(%d, %d, %t): %v", tt.year, tt.day, tt.leap, err)
			}
			if got.Season != tt.want.Season || got.DayOfSeason != tt.want.DayOfSeason ||
				got.YOLD != tt.want.YOLD || got.StTibs != tt.want.StTibs {
				t.Errorf("FromCivil(%d, %d, %t) = %+v, want %+v", tt.year, tt.day, tt.leap, got, tt.want)
			}
		})
	}
}

func TestFromCivil_OutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		year, day int
		leap      bool
	}{
		{name: "day 366 of a non-leap year", year: 2023, day: 366},
		{name: "day 367 of a leap year", year: 2020, day: 367, leap: true},
		{name: "day zero", year: 2023, day: 0},
		{name: "negative day", year: 2023, day: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromCivil(tt.year, tt.day, tt.leap)
			if !errors.Is(err, ErrInvalidDayOfYear) {
				t.Errorf("FromCivil(%d, %d, %t) error = %v, want ErrInvalidDayOfYear",
					tt.year, tt.day, tt.leap, err)
			}
		})
	}
}

// TestFromCivil_SeasonArithmetic checks every day of a non-leap year
// against the closed-form season and day-of-season expressions.
func TestFromCivil_SeasonArithmetic(t *testing.T) {
	for day := 1; day <= 365; day++ {
		d, err := FromCivil(2023, day, false)
		if err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if d.StTibs {
			t.Fatalf("day %d: unexpected St. Tib's Day in a non-leap year", day)
		}
		if want := Season((day - 1) / 73); d.Season != want {
			t.Errorf("day %d: season = %v, want %v", day, d.Season, want)
		}
		if want := (day-1)%73 + 1; d.DayOfSeason != want {
			t.Errorf("day %d: day of season = %d, want %d", day, d.DayOfSeason, want)
		}
		if want := Weekday((day - 1) % 5); d.Weekday() != want {
			t.Errorf("day %d: weekday = %v, want %v", day, d.Weekday(), want)
		}
	}
}

// TestFromCivil_LeapYearTibs checks that day 60 and only day 60 of a
// leap year is St. Tib's Day.
func TestFromCivil_LeapYearTibs(t *testing.T) {
	for day := 1; day <= 366; day++ {
		d, err := FromCivil(2020, day, true)
		if err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if got, want := d.StTibs, day == 60; got != want {
			t.Errorf("day %d: StTibs = %t, want %t", day, got, want)
		}
	}
}

func TestFromCivil_YOLDOffset(t *testing.T) {
	for _, year := range []int{-1166, -1, 0, 1, 1066, 2000, 2017, 2023, 9999} {
		d, err := FromCivil(year, 1, IsLeap(year))
		if err != nil {
			t.Fatalf("year %d: %v", year, err)
		}
		if want := year + 1166; d.YOLD != want {
			t.Errorf("year %d: YOLD = %d, want %d", year, d.YOLD, want)
		}
	}
}

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2020, true},
		{2023, false},
		{2000, true},
		{1900, false},
		{1066, false},
		{-400, true},
		{4, true},
	}

	for _, tt := range tests {
		if got := IsLeap(tt.year); got != tt.want {
			t.Errorf("IsLeap(%d) = %t, want %t", tt.year, got, tt.want)
		}
	}
}
