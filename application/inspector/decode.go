package inspector

// Evaluate results come back as JSON-decoded values: maps keyed by
// string, []interface{} slices, float64 numbers. These helpers keep
// the decoding at call sites tolerant of missing or mistyped fields.

// getString - extracts string value from map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getBool - extracts boolean value from map
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// getFloat - extracts numeric value from map
func getFloat(m map[string]interface{}, key string) float64 {
	if v, ok := m[key]; ok {
		switch val := v.(type) {
		case float64:
			return val
		case int:
			return float64(val)
		}
	}
	return 0
}

// getInt - extracts integer value from map
func getInt(m map[string]interface{}, key string) int {
	return int(getFloat(m, key))
}

// asMap - converts an evaluate result to a map, nil if not one
func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

// asSlice - converts an evaluate result to a slice, nil if not one
func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}
