// Package format holds the catalog of named canvas formats a creative can be
// validated against or adapted into. The catalog is keyed by "WxH" and covers
// social, display and in-store print sizes; deployments can overlay extra
// formats from a TOML file.
package format

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/adproof/adproof/pkg/errors"
)

func keyFor(w, h int) string { return fmt.Sprintf("%dx%d", w, h) }

// Default lookup keys used when a requested format is unknown.
const (
	DefaultSourceKey = "1080x1920"
	DefaultTargetKey = "1080x1080"
)

// Config describes a single canvas format. Safe-zone percentages mark regions
// occluded by platform UI where content-bearing elements must not sit; zero
// means no reserved band on that edge.
type Config struct {
	Name        string  `toml:"name" json:"name"`
	Width       int     `toml:"width" json:"width"`
	Height      int     `toml:"height" json:"height"`
	AspectRatio float64 `toml:"-" json:"aspect_ratio"`
	Platform    string  `toml:"platform" json:"platform"`

	SafeZoneTopPct    float64 `toml:"safe_zone_top_pct" json:"safe_zone_top_pct,omitempty"`
	SafeZoneBottomPct float64 `toml:"safe_zone_bottom_pct" json:"safe_zone_bottom_pct,omitempty"`
	SafeZoneLeftPct   float64 `toml:"safe_zone_left_pct" json:"safe_zone_left_pct,omitempty"`
	SafeZoneRightPct  float64 `toml:"safe_zone_right_pct" json:"safe_zone_right_pct,omitempty"`
}

// Key returns the canonical "WxH" registry key for the format.
func (c Config) Key() string {
	return keyFor(c.Width, c.Height)
}

// HasSafeZones reports whether the format reserves a top or bottom band.
func (c Config) HasSafeZones() bool {
	return c.SafeZoneTopPct != 0 || c.SafeZoneBottomPct != 0
}

// Registry is a read-only catalog of formats keyed by "WxH".
type Registry struct {
	formats map[string]Config
}

// Builtin returns a registry populated with the standard format catalog.
func Builtin() *Registry {
	r := &Registry{formats: make(map[string]Config, len(builtins))}
	for _, c := range builtins {
		r.formats[c.Key()] = c
	}
	return r
}

var builtins = []Config{
	{
		Name: "Instagram/Facebook Story", Width: 1080, Height: 1920,
		AspectRatio: 9.0 / 16.0, Platform: "stories",
		SafeZoneTopPct: 10.4, SafeZoneBottomPct: 13.0,
	},
	{
		Name: "Instagram/Facebook Square", Width: 1080, Height: 1080,
		AspectRatio: 1.0, Platform: "feed",
	},
	{
		Name: "Facebook Feed Landscape", Width: 1200, Height: 628,
		AspectRatio: 1200.0 / 628.0, Platform: "facebook",
	},
	{
		Name: "Medium Rectangle", Width: 300, Height: 250,
		AspectRatio: 300.0 / 250.0, Platform: "display",
	},
	{
		Name: "Leaderboard", Width: 728, Height: 90,
		AspectRatio: 728.0 / 90.0, Platform: "display",
	},
	{
		Name: "Wide Skyscraper", Width: 160, Height: 600,
		AspectRatio: 160.0 / 600.0, Platform: "display",
	},
	{
		Name: "A4 Portrait (300 DPI)", Width: 2480, Height: 3508,
		AspectRatio: 2480.0 / 3508.0, Platform: "in_store",
	},
	{
		Name: "A4 Landscape (300 DPI)", Width: 3508, Height: 2480,
		AspectRatio: 3508.0 / 2480.0, Platform: "in_store",
	},
}

// Lookup returns the format for a "WxH" key.
func (r *Registry) Lookup(key string) (Config, bool) {
	c, ok := r.formats[key]
	return c, ok
}

// Source resolves a source format key, falling back to the story format when
// the key is unknown. Layouts are authored at the story reference canvas, so
// an unrecognized source is treated as that canvas rather than rejected.
func (r *Registry) Source(key string) Config {
	if c, ok := r.formats[key]; ok {
		return c
	}
	return r.formats[DefaultSourceKey]
}

// Target resolves a target format key, falling back to the square format.
func (r *Registry) Target(key string) Config {
	if c, ok := r.formats[key]; ok {
		return c
	}
	return r.formats[DefaultTargetKey]
}

// MustLookup resolves a key or returns a FORMAT_NOT_FOUND error. Used where
// the caller named the format explicitly and a silent fallback would hide a
// typo.
func (r *Registry) MustLookup(key string) (Config, error) {
	c, ok := r.formats[key]
	if !ok {
		return Config{}, errors.New(errors.ErrCodeFormatNotFound, "unknown format %q", key)
	}
	return c, nil
}

// All returns every format sorted by key for stable listings.
func (r *Registry) All() []Config {
	out := make([]Config, 0, len(r.formats))
	for _, c := range r.formats {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Keys returns every registry key in sorted order.
func (r *Registry) Keys() []string {
	out := make([]string, 0, len(r.formats))
	for k := range r.formats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// overlayFile is the TOML shape for custom format definitions:
//
//	[formats."600x500"]
//	name = "Custom Banner"
//	width = 600
//	height = 500
//	platform = "display"
type overlayFile struct {
	Formats map[string]Config `toml:"formats"`
}

// LoadFile merges format definitions from a TOML file over the registry.
// Overlay entries replace builtins with the same key; the aspect ratio is
// derived from the declared dimensions.
func (r *Registry) LoadFile(path string) error {
	var file overlayFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode formats file %s", path)
	}

	for key, c := range file.Formats {
		if c.Width <= 0 || c.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidFormat, "format %q needs positive dimensions", key)
		}
		if c.Key() != key {
			return errors.New(errors.ErrCodeInvalidFormat, "format key %q does not match dimensions %s", key, c.Key())
		}
		c.AspectRatio = float64(c.Width) / float64(c.Height)
		r.formats[key] = c
	}
	return nil
}
