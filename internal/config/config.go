// Package config loads and validates engine settings from JSON.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/nikallass/quickesc/internal/layout"
	"github.com/nikallass/quickesc/internal/quickesc"
	"github.com/nikallass/quickesc/internal/tapdance"
)

// Escape key variants.
const (
	VariantLatch = "latch"
	VariantDance = "dance"
)

// Errors returned when loading configuration.
var (
	ErrInvalidJSON = errors.New("config: invalid JSON")
)

// FieldError reports a setting that failed validation.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: %s = %q: %s", e.Field, e.Value, e.Reason)
}

// Config holds engine settings.
type Config struct {
	// Variant selects the escape key implementation: "latch" or "dance".
	Variant string

	// GraveTimeout is how long grave mode persists after a tap, in ticks.
	GraveTimeout uint16

	// TappingTerm is the tap dance window for the dance variant, in ticks.
	TappingTerm uint16

	// BaseLayer names the default layer, "mac_base" or "win_base".
	BaseLayer layout.Layer

	// KeymapDirs are directories scanned for override keymap files.
	KeymapDirs []string

	// ScriptPath is an optional Lua hook script.
	ScriptPath string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Variant:      VariantLatch,
		GraveTimeout: quickesc.GraveTimeout,
		TappingTerm:  tapdance.DefaultTerm,
		BaseLayer:    layout.MacBase,
	}
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Variant != VariantLatch && c.Variant != VariantDance {
		return &FieldError{Field: "variant", Value: c.Variant, Reason: "must be latch or dance"}
	}
	if c.GraveTimeout == 0 {
		return &FieldError{Field: "grave_timeout", Value: "0", Reason: "must be positive"}
	}
	if c.TappingTerm == 0 {
		return &FieldError{Field: "tapping_term", Value: "0", Reason: "must be positive"}
	}
	if !c.BaseLayer.IsBase() {
		return &FieldError{Field: "base_layer", Value: c.BaseLayer.String(), Reason: "must be a base layer"}
	}
	return nil
}

// LoadBytes parses settings JSON on top of the defaults. Absent fields
// keep their default values.
func LoadBytes(data []byte) (Config, error) {
	if !gjson.ValidBytes(data) {
		return Config{}, ErrInvalidJSON
	}

	c := Default()
	doc := gjson.ParseBytes(data)

	if v := doc.Get("variant"); v.Exists() {
		c.Variant = v.String()
	}
	if v := doc.Get("grave_timeout"); v.Exists() {
		n := v.Int()
		if n < 0 || n > 0xFFFF {
			return Config{}, &FieldError{Field: "grave_timeout", Value: v.Raw, Reason: "out of range"}
		}
		c.GraveTimeout = uint16(n)
	}
	if v := doc.Get("tapping_term"); v.Exists() {
		n := v.Int()
		if n < 0 || n > 0xFFFF {
			return Config{}, &FieldError{Field: "tapping_term", Value: v.Raw, Reason: "out of range"}
		}
		c.TappingTerm = uint16(n)
	}
	if v := doc.Get("base_layer"); v.Exists() {
		layer, ok := layout.LayerFromName(v.String())
		if !ok {
			return Config{}, &FieldError{Field: "base_layer", Value: v.String(), Reason: "unknown layer"}
		}
		c.BaseLayer = layer
	}
	if v := doc.Get("keymap_dirs"); v.Exists() {
		c.KeymapDirs = nil
		for _, dir := range v.Array() {
			c.KeymapDirs = append(c.KeymapDirs, dir.String())
		}
	}
	if v := doc.Get("script"); v.Exists() {
		c.ScriptPath = v.String()
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile reads settings from a JSON file. A missing file yields the
// defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := LoadBytes(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (%s)", err, path)
	}
	return c, nil
}

// Marshal renders the settings as JSON.
func (c Config) Marshal() ([]byte, error) {
	out := []byte("{}")
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, value)
	}

	set("variant", c.Variant)
	set("grave_timeout", int(c.GraveTimeout))
	set("tapping_term", int(c.TappingTerm))
	set("base_layer", c.BaseLayer.String())
	if len(c.KeymapDirs) > 0 {
		set("keymap_dirs", c.KeymapDirs)
	}
	if c.ScriptPath != "" {
		set("script", c.ScriptPath)
	}

	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return out, nil
}

// SaveFile writes the settings to a JSON file, creating parent
// directories as needed.
func (c Config) SaveFile(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the user settings file location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quickesc", "config.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "quickesc", "config.json")
}
