// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discordian

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// apostleDay is the day of each season holding an apostolic holyday.
	apostleDay = 5
	// fluxDay is the day of each season holding a seasonal holyday.
	fluxDay = 50
)

var (
	apostleHolydays = [...]string{"Mungday", "Mojoday", "Syaday", "Zaraday", "Maladay"}
	seasonHolydays  = [...]string{"Chaoflux", "Discoflux", "Confuflux", "Bureflux", "Afflux"}
)

// String renders the canonical Discordian date, e.g.
//
//	Pungenday, the 16th day of The Aftermath in the YOLD 3183
//	St. Tib's Day, the YOLD 3186
func (d Date) String() string {
	if d.StTibs {
		return fmt.Sprintf("St. Tib's Day, the YOLD %d", d.YOLD)
	}
	return fmt.Sprintf("%s, the %s day of %s in the YOLD %d",
		d.Weekday(), ordinalize(d.DayOfSeason), d.Season, d.YOLD)
}

// Holyday returns the holyday falling on d, if any. Each season has an
// apostolic holyday on its 5th day and a seasonal holyday on its 50th;
// St. Tib's Day carries none.
func (d Date) Holyday() (string, bool) {
	if d.StTibs {
		return "", false
	}
	switch d.DayOfSeason {
	case apostleDay:
		return apostleHolydays[d.Season], true
	case fluxDay:
		return seasonHolydays[d.Season], true
	}
	return "", false
}

// ordinalize appends the English ordinal suffix to a numeral, with the
// 11th/12th/13th exception.
func ordinalize(n int) string {
	s := strconv.Itoa(n)
	suffix := "th"
	switch {
	case strings.HasSuffix(s, "1") && !strings.HasSuffix(s, "11"):
		suffix = "st"
	case strings.HasSuffix(s, "2") && !strings.HasSuffix(s, "12"):
		suffix = "nd"
	case strings.HasSuffix(s, "3") && !strings.HasSuffix(s, "13"):
		suffix = "rd"
	}
	return s + suffix
}
