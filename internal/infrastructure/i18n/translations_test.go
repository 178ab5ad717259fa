package i18n

import (
	"io/fs"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestTranslatorRendersTemplates(t *testing.T) {
	tr := NewTranslator("en")
	got := tr.T("en", "ui.calendar_title", map[string]any{"Zone": "Asia/Dhaka"})
	if got != "📅 Calendar in Asia/Dhaka time" {
		t.Fatalf("en = %q", got)
	}
	got = tr.T("fr", "info.event_deleted", nil)
	if got != "🗑️ Événement supprimé." {
		t.Fatalf("fr = %q", got)
	}
}

func TestTranslatorFallbacks(t *testing.T) {
	tr := NewTranslator("en")
	if got := tr.T("de", "errors.invalid_clock", nil); got != "❌ Invalid time format. Please use HH:mm in 24-hour format." {
		t.Fatalf("unknown locale fallback = %q", got)
	}
	if got := tr.T("en", "no.such.key", nil); got != "no.such.key" {
		t.Fatalf("missing key fallback = %q", got)
	}
	if got := tr.T("en", "", nil); got != "" {
		t.Fatalf("empty key = %q", got)
	}
}

func TestNewTranslatorBadLocale(t *testing.T) {
	tr := NewTranslator("not a locale!")
	if tr.DefaultLocale() != "en" {
		t.Fatalf("default locale = %q", tr.DefaultLocale())
	}
}

func TestLocaleFilesShareKeys(t *testing.T) {
	tr := NewTranslator("en")
	for _, key := range []string{"ui.confirm_delete", "errors.event_not_found", "info.zone_changed", "ui.event_line"} {
		en := tr.T("en", key, map[string]any{"Title": "x", "Zone": "UTC", "Local": "1", "City": "c", "Original": "2"})
		fr := tr.T("fr", key, map[string]any{"Title": "x", "Zone": "UTC", "Local": "1", "City": "c", "Original": "2"})
		if en == key || fr == key || en == fr {
			t.Fatalf("%s: en=%q fr=%q", key, en, fr)
		}
	}
}

func TestMessageFilesDefineSameKeys(t *testing.T) {
	keys := map[string]map[string]any{}
	files, err := fs.Glob(localeFS, localePattern)
	if err != nil || len(files) < 2 {
		t.Fatalf("message files = %v, %v", files, err)
	}
	for _, file := range files {
		data, err := localeFS.ReadFile(file)
		if err != nil {
			t.Fatalf("read %s: %v", file, err)
		}
		m := map[string]any{}
		if err := toml.Unmarshal(data, &m); err != nil {
			t.Fatalf("parse %s: %v", file, err)
		}
		keys[file] = m
	}
	en := keys["active.en.toml"]
	for file, m := range keys {
		if len(m) != len(en) {
			t.Errorf("%s has %d keys, active.en.toml has %d", file, len(m), len(en))
		}
		for k := range en {
			if _, ok := m[k]; !ok {
				t.Errorf("%s lacks %s", file, k)
			}
		}
	}
}

func TestTranslatorLocales(t *testing.T) {
	tr := NewTranslator("en")
	got := map[string]bool{}
	for _, l := range tr.Locales() {
		got[l] = true
	}
	if !got["en"] || !got["fr"] {
		t.Fatalf("Locales = %v", tr.Locales())
	}
	if s := tr.T("fr-FR", "ui.button_cancel", nil); s != tr.T("fr", "ui.button_cancel", nil) {
		t.Fatalf("regional locale = %q", s)
	}
}
