package dataset

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned when a dataset has no values.
	ErrEmpty = errors.New("dataset is empty")
	// ErrUnordered is returned when dataset values are not ascending.
	ErrUnordered = errors.New("dataset values must be ascending")
)

// Default returns the built-in price buckets.
func Default() []int {
	return []int{0, 500, 1000, 2000, 4000, 6000, 8000, 10000}
}

// Parse reads a comma separated list of integers such as "0,500,1000".
// Whitespace around values is ignored.
func Parse(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}

	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse value %d: %w", i, err)
		}
		values = append(values, v)
	}
	if err := Validate(values); err != nil {
		return nil, err
	}
	return values, nil
}

// Validate checks that values is non-empty and ascending. Equal neighbours are
// allowed.
func Validate(values []int) error {
	if len(values) == 0 {
		return ErrEmpty
	}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return fmt.Errorf("value %d at index %d after %d: %w", values[i], i, values[i-1], ErrUnordered)
		}
	}
	return nil
}

// MaxValue is the domain maximum a dataset of n buckets spans at the given step.
func MaxValue(step float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return step * float64(n-1)
}

// Format renders values the way Parse reads them.
func Format(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Equal reports whether a and b hold the same buckets.
func Equal(a, b []int) bool { return slices.Equal(a, b) }
