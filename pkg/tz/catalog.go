// Package tz holds the selectable zone catalog and the civil-time conversion
// helpers. The IANA database is embedded so zone lookups behave the same on
// every host.
package tz

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"
)

// Fallback is the zone used when nothing better can be detected.
const Fallback = "UTC"

// ZoneOption is an entry of the zone selector.
type ZoneOption struct {
	ID    string
	Label string
}

var zones = []ZoneOption{
	{ID: "Asia/Dhaka", Label: "Bangladesh Time"},
	{ID: "Europe/London", Label: "UK Time"},
	{ID: "America/New_York", Label: "Eastern Time"},
	{ID: "America/Los_Angeles", Label: "Pacific Time"},
	{ID: "Asia/Tokyo", Label: "Japan Time"},
	{ID: "Australia/Sydney", Label: "Australia Eastern Time"},
}

// Zones returns the selectable zones in display order.
func Zones() []ZoneOption {
	out := make([]ZoneOption, len(zones))
	copy(out, zones)
	return out
}

// IsValid reports whether id names a zone of the IANA database.
func IsValid(id string) bool {
	if id == "" || id == "Local" {
		return false
	}
	_, err := Load(id)
	return err == nil
}

// Label returns the catalog label of id, or a readable form of the id itself.
func Label(id string) string {
	for _, z := range zones {
		if z.ID == id {
			return z.Label
		}
	}
	return City(id)
}

// City is the last path element of a zone id, underscores as spaces.
func City(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 && i < len(id)-1 {
		return strings.ReplaceAll(id[i+1:], "_", " ")
	}
	return id
}

// environment is what DetectDefault inspects.
type environment struct {
	getenv   func(string) string
	readlink func(string) (string, error)
	local    *time.Location
}

// DetectDefault guesses the host zone from TZ, /etc/localtime and time.Local.
// It never fails: an unresolvable host yields Fallback.
func DetectDefault() string {
	return detect(environment{getenv: os.Getenv, readlink: os.Readlink, local: time.Local})
}

func detect(env environment) string {
	var candidates []string
	if env.getenv != nil {
		candidates = append(candidates, strings.TrimPrefix(env.getenv("TZ"), ":"))
	}
	if env.readlink != nil {
		if target, err := env.readlink("/etc/localtime"); err == nil {
			candidates = append(candidates, zoneFromPath(target))
		}
	}
	if env.local != nil {
		candidates = append(candidates, env.local.String())
	}
	for _, c := range candidates {
		if IsValid(c) {
			return c
		}
	}
	return Fallback
}

// zoneFromPath extracts "Area/City" from a zoneinfo path such as
// /usr/share/zoneinfo/Europe/London.
func zoneFromPath(p string) string {
	p = filepath.ToSlash(p)
	if i := strings.Index(p, "zoneinfo/"); i >= 0 {
		return p[i+len("zoneinfo/"):]
	}
	return ""
}
