package domain

import "time"

// Clock values are "HH:MM" strings. Zero-padded 24h clocks compare
// chronologically under plain string comparison, so the overlap math below
// needs no parsing.

// NormalizeClock truncates seconds from a clock value ("09:30:00" -> "09:30"),
// zero-pads single-digit hours and validates the result. Returns ErrValidation
// for anything that is not a well-formed 24h clock.
func NormalizeClock(v string) (string, error) {
	if len(v) > 5 {
		v = v[:5]
	}
	t, err := time.Parse("15:04", v)
	if err != nil {
		return "", ErrValidation
	}
	return t.Format("15:04"), nil
}

// ValidDate reports whether v is a well-formed YYYY-MM-DD calendar date.
func ValidDate(v string) bool {
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}

// Overlaps reports whether the half-open ranges [s1,e1) and [s2,e2) intersect.
// Back-to-back slots (e1 == s2 or e2 == s1) do not overlap, so adjacent
// bookings are always allowed.
func Overlaps(s1, e1, s2, e2 string) bool {
	return s1 < e2 && e1 > s2
}
