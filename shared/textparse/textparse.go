// Package textparse holds parsers shaped for stream.Read: each takes one line
// of text and returns a value or an error. Surrounding white space is ignored.
package textparse

import (
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"github.com/rickb777/date/v2"
)

func Int(text string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(text))
}

func Float(text string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(text), 64)
}

// Bool accepts the forms strconv.ParseBool does: 1, t, true, 0, f, false and their capitalisations.
func Bool(text string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(text))
}

// Date parses an ISO-8601 calendar date such as 2024-02-29.
func Date(text string) (date.Date, error) {
	return date.ParseISO(strings.TrimSpace(text))
}

// Decimal parses a decimal number, keeping its scale: "1.50" stays 1.50.
func Decimal(text string) (decimal.Decimal, error) {
	return decimal.Parse(strings.TrimSpace(text))
}
