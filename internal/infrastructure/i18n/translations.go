// Package i18n holds the calendar's user-facing text: the channel message,
// modals, menus and replies, with one embedded TOML file per language.
package i18n

import (
	"embed"
	"io/fs"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"tzcal/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

const localePattern = "active.*.toml"

var _ output.T = (*Translator)(nil)

// Translator renders message keys such as "ui.event_line" or
// "errors.unknown_zone" in the locale Discord reports for a user.
type Translator struct {
	bundle   *i18n.Bundle
	fallback language.Tag
}

// NewTranslator loads every embedded language. fallback is used for users
// whose locale has no file and for the shared calendar message.
func NewTranslator(fallback string) *Translator {
	tag, err := language.Parse(fallback)
	if err != nil {
		log.Printf("⚠️ i18n: unknown locale %q, using en", fallback)
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, localePattern)
	if err != nil {
		log.Printf("❌ i18n: listing message files: %v", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("❌ i18n: failed to load %s: %v", file, err)
		}
	}

	return &Translator{bundle: bundle, fallback: tag}
}

// DefaultLocale is the fallback language tag, e.g. "en".
func (t *Translator) DefaultLocale() string {
	return t.fallback.String()
}

// Locales lists the languages with a message file.
func (t *Translator) Locales() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}

// T renders key in locale (a Discord locale such as "en-GB" or "fr"), then in
// the fallback language. A key missing everywhere is returned as is so the
// gap shows up in the channel instead of an empty field.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	localizer := i18n.NewLocalizer(t.bundle, locale, t.fallback.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: no text for %s (locale %q): %v", key, locale, err)
		return key
	}
	return msg
}
