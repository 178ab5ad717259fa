package tz

import (
	"errors"
	"testing"
	"time"
)

func TestZonesIsACopy(t *testing.T) {
	z := Zones()
	if len(z) != 6 || z[0].ID != "Asia/Dhaka" || z[1].Label != "UK Time" {
		t.Fatalf("Zones() = %+v", z)
	}
	z[0].Label = "changed"
	if Zones()[0].Label != "Bangladesh Time" {
		t.Fatal("catalog mutated through Zones()")
	}
	for _, opt := range z {
		if !IsValid(opt.ID) {
			t.Fatalf("catalog zone %s not in the IANA database", opt.ID)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := map[string]bool{
		"UTC":               true,
		"Europe/London":     true,
		"America/Sao_Paulo": true,
		"":                  false,
		"Local":             false,
		"Mars/Olympus":      false,
		"europe/london ":    false,
	}
	for id, want := range tests {
		if got := IsValid(id); got != want {
			t.Fatalf("IsValid(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"Asia/Tokyo":                     "Japan Time",
		"America/Argentina/Buenos_Aires": "Buenos Aires",
		"UTC":                            "UTC",
	}
	for id, want := range tests {
		if got := Label(id); got != want {
			t.Fatalf("Label(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestDetect(t *testing.T) {
	noLink := func(string) (string, error) { return "", errors.New("no link") }
	tests := []struct {
		name string
		env  environment
		want string
	}{
		{
			name: "TZ variable",
			env:  environment{getenv: envOf("TZ", "Asia/Tokyo"), readlink: noLink},
			want: "Asia/Tokyo",
		},
		{
			name: "TZ with colon prefix",
			env:  environment{getenv: envOf("TZ", ":Europe/London"), readlink: noLink},
			want: "Europe/London",
		},
		{
			name: "localtime symlink",
			env: environment{
				getenv:   envOf("TZ", "Bogus/Zone"),
				readlink: func(string) (string, error) { return "/usr/share/zoneinfo/America/New_York", nil },
			},
			want: "America/New_York",
		},
		{
			name: "time.Local with a name",
			env:  environment{getenv: envOf(), readlink: noLink, local: mustLoad(t, "Australia/Sydney")},
			want: "Australia/Sydney",
		},
		{
			name: "nothing usable",
			env:  environment{getenv: envOf(), readlink: noLink, local: time.Local},
			want: Fallback,
		},
		{
			name: "nothing at all",
			env:  environment{},
			want: Fallback,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detect(tt.env); got != tt.want {
				t.Fatalf("detect = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectDefaultNeverEmpty(t *testing.T) {
	if got := DetectDefault(); !IsValid(got) {
		t.Fatalf("DetectDefault() = %q is not a valid zone", got)
	}
}

func envOf(kv ...string) func(string) string {
	m := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return func(k string) string { return m[k] }
}

func mustLoad(t *testing.T, id string) *time.Location {
	t.Helper()
	loc, err := Load(id)
	if err != nil {
		t.Fatalf("load %s: %v", id, err)
	}
	return loc
}
