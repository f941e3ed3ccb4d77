package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// RoundHalfUp rounds to the nearest integer, with halves going toward
// positive infinity (so -2.5 becomes -2).
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Fahrenheit formats a temperature as e.g. "72°F".
func Fahrenheit(v float64) string {
	return fmt.Sprintf("%d°F", RoundHalfUp(v))
}

// Number prints v with the fewest digits needed, e.g. 6 -> "6", 9.4 -> "9.4".
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// HourLabel converts a 24-hour clock hour into a 12-hour label.
func HourLabel(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

// ShortWeekday returns the en-US short weekday ("Mon") of a YYYY-MM-DD date,
// or "" if the date does not parse.
func ShortWeekday(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}

// IconURL turns WeatherAPI's protocol-relative icon path into an https URL.
func IconURL(icon string) string {
	if strings.HasPrefix(icon, "//") {
		return "https:" + icon
	}
	return icon
}
