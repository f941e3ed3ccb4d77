// Package validator decides whether raw user input is an acceptable location.
package validator

import "regexp"

var (
	cityPattern = regexp.MustCompile(`^[A-Za-z\s\v]+$`)
	zipPattern  = regexp.MustCompile(`^\d{5}$`)
)

// IsValidLocation reports whether text is a city name (ASCII letters and
// whitespace) or a 5-digit postal code. Callers trim the input first.
func IsValidLocation(text string) bool {
	return cityPattern.MatchString(text) || zipPattern.MatchString(text)
}
