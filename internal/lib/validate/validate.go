// Package validate holds format checks applied after normalization.
// It is a pure function of its input and never touches storage.
package validate

import "regexp"

// emailRx is deliberately loose: local@domain.tld with no whitespace or
// extra @ signs. Deliverability is not this system's problem.
var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(s string) bool {
	return emailRx.MatchString(s)
}
