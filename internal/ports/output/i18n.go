package output

// T is the i18n contract for user-facing messages.
type T interface {
	// T renders the message identified by key for the given locale.
	// data holds template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}
