package discord

import "tzcal/internal/domain"

// ErrorKey maps an error to the i18n key of its user-facing message.
func ErrorKey(err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return "errors." + code
	}
	return "errors.generic"
}
