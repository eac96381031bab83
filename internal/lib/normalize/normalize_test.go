package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    any
		max      int
		expected string
	}{
		{name: "Plain string", input: "Jazz Night", max: 200, expected: "Jazz Night"},
		{name: "Trims whitespace", input: "  Jazz Night  ", max: 200, expected: "Jazz Night"},
		{name: "Truncates to max", input: strings.Repeat("a", 250), max: 200, expected: strings.Repeat("a", 200)},
		{name: "Truncates runes not bytes", input: strings.Repeat("ж", 250), max: 200, expected: strings.Repeat("ж", 200)},
		{name: "Nil becomes empty", input: nil, max: 200, expected: ""},
		{name: "Number coerced", input: float64(42), max: 200, expected: "42"},
		{name: "Only whitespace", input: "   ", max: 200, expected: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Text(tc.input, tc.max))
		})
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "Lowercases", input: "A@B.com", expected: "a@b.com"},
		{name: "Trims", input: "  user@example.com  ", expected: "user@example.com"},
		{name: "Nil becomes empty", input: nil, expected: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Email(tc.input))
		})
	}
}

func TestQuantity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		fields   map[string]any
		expected int
	}{
		{name: "In range", fields: map[string]any{"quantity": float64(5)}, expected: 5},
		{name: "Above range clamps to max", fields: map[string]any{"quantity": float64(15)}, expected: 10},
		{name: "Zero clamps to min", fields: map[string]any{"quantity": float64(0)}, expected: 1},
		{name: "Negative clamps to min", fields: map[string]any{"quantity": float64(-3)}, expected: 1},
		{name: "Fraction truncates toward zero", fields: map[string]any{"quantity": 2.9}, expected: 2},
		{name: "Numeric string parsed", fields: map[string]any{"quantity": "7"}, expected: 7},
		{name: "Garbage string defaults", fields: map[string]any{"quantity": "lots"}, expected: 1},
		{name: "Null defaults", fields: map[string]any{"quantity": nil}, expected: 1},
		{name: "Bool defaults", fields: map[string]any{"quantity": true}, expected: 1},
		{name: "Absent defaults", fields: map[string]any{}, expected: 1},
		{name: "qty alias", fields: map[string]any{"qty": float64(4)}, expected: 4},
		{name: "tickets alias", fields: map[string]any{"tickets": float64(6)}, expected: 6},
		{name: "numTickets alias", fields: map[string]any{"numTickets": float64(8)}, expected: 8},
		{name: "ticketCount alias", fields: map[string]any{"ticketCount": float64(9)}, expected: 9},
		{name: "First alias wins", fields: map[string]any{"qty": float64(5), "tickets": float64(9)}, expected: 5},
		{name: "quantity wins over aliases", fields: map[string]any{"quantity": float64(2), "qty": float64(9)}, expected: 2},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, Quantity(tc.fields))
		})
	}
}
