// Package cast provides type conversion helpers for loosely typed configuration values.
package cast

// ToStringSlice converts v to []string. Accepts []string or []any where each element is string.
func ToStringSlice(v any) ([]string, bool) {
	if ss, ok := v.([]string); ok {
		return ss, true
	}
	slice, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(slice))
	for _, e := range slice {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// ToStrings converts a single string or a string list to []string.
// A nil value yields nil, true; an empty string yields an empty slice.
func ToStrings(v any) ([]string, bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case string:
		if x == "" {
			return []string{}, true
		}
		return []string{x}, true
	default:
		return ToStringSlice(v)
	}
}
