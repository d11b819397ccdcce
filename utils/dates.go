package utils

import (
	"errors"
	"time"
)

var ErrMalformedDate = errors.New("malformed date")

// ParseDate parses value with the first layout that accepts it.
func ParseDate(value string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrMalformedDate
}

// DateValidator checks booking and availability dates at the HTTP boundary.
// A lenient validator only rejects empty dates.
type DateValidator struct {
	Strict  bool
	Layouts []string
}

func (v DateValidator) Validate(date string) error {
	if date == "" {
		return ErrMalformedDate
	}
	if !v.Strict {
		return nil
	}
	_, err := ParseDate(date, v.Layouts)
	return err
}
