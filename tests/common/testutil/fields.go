//go:build unit || e2e

package testutil

// Field overrides one key of a request-body map; a nil value drops the
// key, which is how validation grids express a missing field.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
