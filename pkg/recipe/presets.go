package recipe

import (
	"embed"
	"errors"
	"io/fs"
	"path"
	"strings"
)

//go:embed presets/*.yaml
var presetFS embed.FS

const presetDir = "presets"

// DefaultPreset is the recipe used when no other is requested.
const DefaultPreset = "phrases"

// Preset returns the embedded recipe registered under name.
func Preset(name string) (*Recipe, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || strings.ContainsAny(name, `/\.`) {
		return nil, ErrUnknownPreset
	}

	data, err := presetFS.ReadFile(path.Join(presetDir, name+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrUnknownPreset
		}
		return nil, err
	}
	return Parse(data)
}

// PresetNames lists the embedded presets in lexical order.
func PresetNames() []string {
	entries, err := fs.ReadDir(presetFS, presetDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	return names
}
