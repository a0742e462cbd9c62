package maputil

import (
	"fmt"
	"sort"

	"github.com/aleister1102/toolbox/collections"
	"github.com/aleister1102/toolbox/errorwrapper"
)

// Of builds a map[string]any from alternating key/value arguments. Keys must
// be strings and the argument count must be even.
func Of(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errorwrapper.NewValidationError("pairs", len(pairs), "must contain an even number of arguments")
	}
	result := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errorwrapper.NewTypeMismatchError(fmt.Sprintf("pairs[%d]", i), "string", fmt.Sprintf("%T", pairs[i]))
		}
		result[key] = pairs[i+1]
	}
	return result, nil
}

// Entry is a single key/value pair
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// FromEntries builds a map from entries. Later entries win on key collisions.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	result := make(map[K]V, len(entries))
	for _, e := range entries {
		result[e.Key] = e.Value
	}
	return result
}

// GetString returns the string value stored under key
func GetString(m map[string]any, key string) (string, error) {
	raw, err := lookup(m, key)
	if err != nil {
		return "", err
	}
	value, ok := raw.(string)
	if !ok {
		return "", errorwrapper.NewTypeMismatchError(key, "string", fmt.Sprintf("%T", raw))
	}
	return value, nil
}

// GetInt returns the int value stored under key. Whole float64 values are
// accepted because JSON decoding stores numbers as float64.
func GetInt(m map[string]any, key string) (int, error) {
	raw, err := lookup(m, key)
	if err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return 0, errorwrapper.NewTypeMismatchError(key, "int", fmt.Sprintf("%T", raw))
}

// GetInt64 returns the int64 value stored under key
func GetInt64(m map[string]any, key string) (int64, error) {
	raw, err := lookup(m, key)
	if err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v == float64(int64(v)) {
			return int64(v), nil
		}
	}
	return 0, errorwrapper.NewTypeMismatchError(key, "int64", fmt.Sprintf("%T", raw))
}

// GetFloat64 returns the float64 value stored under key
func GetFloat64(m map[string]any, key string) (float64, error) {
	raw, err := lookup(m, key)
	if err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, errorwrapper.NewTypeMismatchError(key, "float64", fmt.Sprintf("%T", raw))
}

// GetBool returns the bool value stored under key
func GetBool(m map[string]any, key string) (bool, error) {
	raw, err := lookup(m, key)
	if err != nil {
		return false, err
	}
	value, ok := raw.(bool)
	if !ok {
		return false, errorwrapper.NewTypeMismatchError(key, "bool", fmt.Sprintf("%T", raw))
	}
	return value, nil
}

// GetStringSlice returns the []string value stored under key. A []any whose
// elements are all strings is accepted.
func GetStringSlice(m map[string]any, key string) ([]string, error) {
	raw, err := lookup(m, key)
	if err != nil {
		return nil, err
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		result := make([]string, len(v))
		for i, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, errorwrapper.NewTypeMismatchError(key, "[]string", fmt.Sprintf("[]any with %T element", elem))
			}
			result[i] = s
		}
		return result, nil
	}
	return nil, errorwrapper.NewTypeMismatchError(key, "[]string", fmt.Sprintf("%T", raw))
}

// GetMap returns the nested map[string]any stored under key
func GetMap(m map[string]any, key string) (map[string]any, error) {
	raw, err := lookup(m, key)
	if err != nil {
		return nil, err
	}
	value, ok := raw.(map[string]any)
	if !ok {
		return nil, errorwrapper.NewTypeMismatchError(key, "map[string]any", fmt.Sprintf("%T", raw))
	}
	return value, nil
}

// GetOr returns the value stored under key when present with the expected
// type, and fallback otherwise
func GetOr[V any](m map[string]any, key string, fallback V) V {
	raw, ok := m[key]
	if !ok {
		return fallback
	}
	value, ok := raw.(V)
	if !ok {
		return fallback
	}
	return value
}

func lookup(m map[string]any, key string) (any, error) {
	value, ok := m[key]
	if !ok {
		return nil, errorwrapper.NewNotFoundError(key)
	}
	return value, nil
}

// Keys returns the map keys in sorted order
func Keys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the map values ordered by sorted key
func Values[V any](m map[string]V) []V {
	keys := Keys(m)
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return values
}

// Invert swaps keys and values. The surviving key on value collisions is
// unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	result := make(map[V]K, len(m))
	for k, v := range m {
		result[v] = k
	}
	return result
}

// Merge combines the maps left to right; later maps win on key collisions
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	result := make(map[K]V)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// FilterKeys returns a copy containing only the keys for which fn is true
func FilterKeys[K comparable, V any](m map[K]V, fn func(K) bool) map[K]V {
	result := make(map[K]V)
	for k, v := range m {
		if fn(k) {
			result[k] = v
		}
	}
	return result
}

// FirstKey returns the first key in sorted order
func FirstKey[V any](m map[string]V) (string, error) {
	return collections.First(Keys(m))
}

// LastKey returns the last key in sorted order
func LastKey[V any](m map[string]V) (string, error) {
	return collections.Last(Keys(m))
}

// NthKey returns the key at position i in sorted order
func NthKey[V any](m map[string]V, i int) (string, error) {
	return collections.Nth(Keys(m), i)
}
