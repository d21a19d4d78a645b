package lint

// GetOption extracts a typed option with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetStringSliceOption extracts a string slice option.
// YAML and JSON decode lists as []any; non-string items are dropped.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	if s := GetOption[[]string](opts, key, nil); s != nil {
		return s
	}
	switch s := GetOption[any](opts, key, nil).(type) {
	case nil:
		return defaultVal
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	case string:
		return []string{s}
	default:
		return defaultVal
	}
}
