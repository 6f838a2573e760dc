package keymap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/nikallass/quickesc/internal/hid"
	"github.com/nikallass/quickesc/internal/layout"
)

// Loader loads keymap override files.
type Loader struct {
	// searchPaths are directories to search for keymap files.
	searchPaths []string
}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a keymap from a JSON file.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	km, err := l.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	km.Source = path
	return km, nil
}

// LoadBytes parses a keymap from JSON.
func (l *Loader) LoadBytes(data []byte) (*Keymap, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	km := &Keymap{
		Name:     doc.Get("name").String(),
		Priority: int(doc.Get("priority").Int()),
	}

	var parseErr error
	doc.Get("overrides").ForEach(func(_, entry gjson.Result) bool {
		layerName := entry.Get("layer").String()
		layer, ok := layout.LayerFromName(layerName)
		if !ok {
			parseErr = fmt.Errorf("unknown layer %q", layerName)
			return false
		}

		codeName := entry.Get("keycode").String()
		kc, ok := hid.KeycodeFromName(codeName)
		if !ok {
			parseErr = fmt.Errorf("unknown keycode %q", codeName)
			return false
		}

		km.Overrides = append(km.Overrides, Override{
			Layer:   layer,
			Key:     int(entry.Get("key").Int()),
			Keycode: kc,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}

// LoadAll loads every keymap file found in the search paths. Files that fail
// to parse are skipped.
func (l *Loader) LoadAll() []*Keymap {
	var keymaps []*Keymap
	for _, dir := range l.searchPaths {
		matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			continue
		}
		for _, path := range matches {
			km, err := l.LoadFile(path)
			if err != nil {
				continue
			}
			keymaps = append(keymaps, km)
		}
	}
	return keymaps
}

// LoadAndRegister loads all keymaps from the search paths and registers
// them.
func (l *Loader) LoadAndRegister(registry *Registry) error {
	for _, km := range l.LoadAll() {
		if err := registry.Register(km); err != nil {
			return fmt.Errorf("registering keymap %q: %w", km.Name, err)
		}
	}
	return nil
}

// Marshal renders a keymap back to JSON.
func Marshal(km *Keymap) ([]byte, error) {
	out := []byte(`{}`)
	var err error

	if out, err = sjson.SetBytes(out, "name", km.Name); err != nil {
		return nil, err
	}
	if km.Priority != 0 {
		if out, err = sjson.SetBytes(out, "priority", km.Priority); err != nil {
			return nil, err
		}
	}
	for i, ov := range km.Overrides {
		prefix := fmt.Sprintf("overrides.%d.", i)
		if out, err = sjson.SetBytes(out, prefix+"layer", ov.Layer.String()); err != nil {
			return nil, err
		}
		if out, err = sjson.SetBytes(out, prefix+"key", ov.Key); err != nil {
			return nil, err
		}
		if out, err = sjson.SetBytes(out, prefix+"keycode", ov.Keycode.String()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SaveFile writes a keymap to a JSON file.
func SaveFile(km *Keymap, path string) error {
	data, err := Marshal(km)
	if err != nil {
		return fmt.Errorf("marshaling keymap: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}
