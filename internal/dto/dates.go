package dto

import "time"

// Fecha formats a date for responses as YYYY-MM-DD.
func Fecha(t time.Time) string { return t.Format(fechaLayout) }

// FechaPtr formats a nullable date, preserving null.
func FechaPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(fechaLayout)
	return &s
}

// ParseFecha parses a required YYYY-MM-DD value.
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(fechaLayout, s)
}

// ParseFechaPtr parses an optional YYYY-MM-DD value, preserving null.
func ParseFechaPtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(fechaLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
