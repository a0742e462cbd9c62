package collections

// Map applies fn to every element and returns the results in order
func Map[T, U any](s []T, fn func(T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(v)
	}
	return result
}

// Filter returns the elements for which fn returns true, in order
func Filter[T any](s []T, fn func(T) bool) []T {
	result := make([]T, 0, len(s))
	for _, v := range s {
		if fn(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reject returns the elements for which fn returns false, in order
func Reject[T any](s []T, fn func(T) bool) []T {
	return Filter(s, func(v T) bool { return !fn(v) })
}

// Reduce folds the slice into a single value, starting from initial
func Reduce[T, U any](s []T, initial U, fn func(U, T) U) U {
	acc := initial
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// Flatten concatenates a slice of slices into one slice, preserving order
func Flatten[T any](s [][]T) []T {
	total := 0
	for _, inner := range s {
		total += len(inner)
	}
	result := make([]T, 0, total)
	for _, inner := range s {
		result = append(result, inner...)
	}
	return result
}

// ToSet converts the slice into a membership set
func ToSet[T comparable](s []T) map[T]struct{} {
	set := make(map[T]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return set
}

// GroupBy partitions the elements by the key fn returns, preserving the
// original order within each group
func GroupBy[T any, K comparable](s []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range s {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}

// Associate builds a map from the slice using the key and value fns. Later
// elements win on key collisions.
func Associate[T any, K comparable, V any](s []T, key func(T) K, value func(T) V) map[K]V {
	result := make(map[K]V, len(s))
	for _, v := range s {
		result[key(v)] = value(v)
	}
	return result
}
