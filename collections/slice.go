package collections

import (
	"strconv"

	"github.com/aleister1102/toolbox/errorwrapper"
)

// IsEmpty reports whether the slice is nil or has no elements
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// IsNotEmpty reports whether the slice has at least one element
func IsNotEmpty[T any](s []T) bool {
	return len(s) > 0
}

// First returns the first element of the slice
func First[T any](s []T) (T, error) {
	return Nth(s, 0)
}

// Last returns the last element of the slice
func Last[T any](s []T) (T, error) {
	return Nth(s, len(s)-1)
}

// Nth returns the element at position i. The slice must contain at least
// i+1 elements.
func Nth[T any](s []T, i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, errorwrapper.NewValidationError("index", i, "must not be negative")
	}
	if len(s) <= i {
		return zero, errorwrapper.NewValidationError("slice", len(s), "must contain at least "+strconv.Itoa(i+1)+" elements")
	}
	return s[i], nil
}

// FirstOr returns the first element, or fallback when the slice is empty
func FirstOr[T any](s []T, fallback T) T {
	if len(s) == 0 {
		return fallback
	}
	return s[0]
}

// LastOr returns the last element, or fallback when the slice is empty
func LastOr[T any](s []T, fallback T) T {
	if len(s) == 0 {
		return fallback
	}
	return s[len(s)-1]
}

// NthOr returns the element at position i, or fallback when out of range
func NthOr[T any](s []T, i int, fallback T) T {
	if i < 0 || i >= len(s) {
		return fallback
	}
	return s[i]
}

// Distinct returns the elements in first-occurrence order with duplicates
// removed exactly once. A nil slice yields an empty slice.
func Distinct[T comparable](s []T) []T {
	result := make([]T, 0, len(s))
	seen := make(map[T]struct{}, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Contains reports whether the slice contains the given element
func Contains[T comparable](s []T, elem T) bool {
	return IndexOf(s, elem) >= 0
}

// IndexOf returns the index of the first occurrence of elem, or -1
func IndexOf[T comparable](s []T, elem T) int {
	for i, v := range s {
		if v == elem {
			return i
		}
	}
	return -1
}

// Reverse returns a new slice with the elements in reverse order
func Reverse[T any](s []T) []T {
	result := make([]T, len(s))
	for i, v := range s {
		result[len(s)-1-i] = v
	}
	return result
}

// Chunk splits the slice into consecutive chunks of the given size. The
// final chunk may be shorter. Size must be positive.
func Chunk[T any](s []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, errorwrapper.NewValidationError("size", size, "must be positive")
	}
	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for size < len(s) {
		chunks = append(chunks, s[:size:size])
		s = s[size:]
	}
	if len(s) > 0 {
		chunks = append(chunks, s)
	}
	return chunks, nil
}
