package types

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted textual form for dates, both on input
// (ParseDate) and on output (Record.String).
const DateLayout = "2006.01.02"

// phoneSeparators strips the separator characters tolerated in phone input.
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "")

// ValidatePhone checks a phone string and returns its normalized form: the
// bare digit sequence with separators removed. After stripping spaces,
// dashes, parentheses and plus signs, the value must be exactly 10 digits.
// Returns ErrInvalidPhone wrapped with the offending value otherwise.
func ValidatePhone(s string) (string, error) {
	normalized := phoneSeparators.Replace(strings.TrimSpace(s))
	if len(normalized) != 10 {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidPhone)
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%q: %w", s, ErrInvalidPhone)
		}
	}
	return normalized, nil
}

// ValidateEmail checks an email string: exactly one "@", a non-empty local
// part, and a domain with at least one dot separating non-empty labels.
// Returns the value unchanged, or ErrInvalidEmail wrapped with it.
func ValidateEmail(s string) (string, error) {
	if strings.Count(s, "@") != 1 {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidEmail)
	}
	local, domain, _ := strings.Cut(s, "@")
	if local == "" {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidEmail)
	}
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidEmail)
	}
	return s, nil
}

// ParseDate parses a date in the fixed YYYY.MM.DD pattern. Out-of-range
// components (month 13, day 32, Feb 29 outside leap years) are rejected.
// The returned time carries no clock component.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return d, nil
}
