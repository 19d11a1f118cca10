package timesheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// hoursMinutes matches "H:MM" / "HH:MM" style durations. The export also
// produces "H.MM" in some sheets, so a dot separator is accepted when the
// text did not already parse as a decimal hour count.
var hoursMinutes = regexp.MustCompile(`^(\d+)\s*[:.]\s*(\d{1,2})$`)

// DurationToMinutes converts a duration cell's text to whole minutes.
// Accepted forms, tried in order:
//
//	"8"    -> 480   plain hour count
//	"8.5"  -> 510   decimal hours, dot separator
//	"8,5"  -> 510   decimal hours, comma separator
//	"8:30" -> 510   hours and minutes, minutes 0-59
//
// Anything else, including empty text, yields 0. The function never fails:
// a garbled cell simply contributes no time.
func DurationToMinutes(text string) int {
	s := normalize(text)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		if v < 0 {
			return 0
		}
		return int(math.Round(v * 60))
	}
	if m := hoursMinutes.FindStringSubmatch(s); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if mm < 60 {
			return hh*60 + mm
		}
	}
	return 0
}

// MinutesToHHMM renders minutes in canonical zero-padded "HH:MM" form.
func MinutesToHHMM(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesToDecimal renders minutes as decimal hours rounded to 2 places.
// Totals are accumulated in integer minutes and only converted here, at
// render time, so repeated additions never accumulate float drift.
func MinutesToDecimal(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
