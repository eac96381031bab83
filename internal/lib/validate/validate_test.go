package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"user@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"plainaddress", false},
		{"a@b", false},
		{"a b@example.com", false},
		{"a@@example.com", false},
		{"a@example .com", false},
		{"@example.com", false},
		{"a@.c", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.email, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.valid, Email(tc.email))
		})
	}
}
