package od

// Helpers for reading bound entry values without the caller caring whether
// the binder produced a scalar or a slice for a given entry.

// UintValue converts a bound scalar value to uint64.
func UintValue(v any) (uint64, bool) {
	switch value := v.(type) {
	case uint8:
		return uint64(value), true
	case uint16:
		return uint64(value), true
	case uint32:
		return uint64(value), true
	case uint64:
		return value, true
	case int8:
		return uint64(value), true
	case int16:
		return uint64(value), true
	case int32:
		return uint64(value), true
	case int64:
		return uint64(value), true
	case bool:
		if value {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Uint16Values flattens a bound value into a []uint16, accepting both the
// scalar and the slice shape the binder can produce for a u16 entry.
func Uint16Values(v any) []uint16 {
	switch value := v.(type) {
	case uint16:
		return []uint16{value}
	case []uint16:
		return value
	default:
		return nil
	}
}

// StringValue converts a bound value to its string form.
func StringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
