// Package normalize turns raw, untyped request fields into canonical values.
// Every function is a pure transformation; validation happens elsewhere.
package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	MaxTitleLen       = 200
	MaxCityLen        = 100
	MaxImageLen       = 500
	MaxDescriptionLen = 1000

	MinQuantity     = 1
	MaxQuantity     = 10
	DefaultQuantity = 1
)

// QuantityAliases are the accepted field names for the booking quantity,
// checked in order; the first present key wins.
var QuantityAliases = []string{"quantity", "qty", "tickets", "numTickets", "ticketCount"}

// Text coerces v to a string, trims surrounding whitespace and truncates
// to max runes. Missing values become the empty string.
func Text(v any, max int) string {
	s := strings.TrimSpace(Coerce(v))

	if runes := []rune(s); len(runes) > max {
		s = string(runes[:max])
	}

	return s
}

// Email coerces v to a string, trims and lowercases it.
func Email(v any) string {
	return strings.ToLower(strings.TrimSpace(Coerce(v)))
}

// Quantity picks the first quantity alias present in fields and clamps its
// numeric value to [MinQuantity, MaxQuantity], truncating toward zero.
// Absent, non-numeric and non-finite values fall back to DefaultQuantity;
// out-of-range input is clamped, never rejected.
func Quantity(fields map[string]any) int {
	for _, key := range QuantityAliases {
		v, ok := fields[key]
		if !ok {
			continue
		}

		return clampQuantity(toNumber(v))
	}

	return DefaultQuantity
}

func clampQuantity(n float64) int {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return DefaultQuantity
	}

	if n < MinQuantity {
		n = MinQuantity
	}
	if n > MaxQuantity {
		n = MaxQuantity
	}

	return int(n)
}

func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// Coerce renders v as a string. JSON numbers keep their shortest decimal
// form; nil becomes the empty string.
func Coerce(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(s)
	}
}
