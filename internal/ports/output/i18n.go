package output

// T renders user-facing messages. Implementations look the key up for the
// given locale and fill template placeholders from data (may be nil).
type T interface {
	T(locale, key string, data map[string]any) string
}
