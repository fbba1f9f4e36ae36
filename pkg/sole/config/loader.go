package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// settingKeys are the keys a coordinator settings file may carry.
// Loaders reject anything else so a misspelled key fails loudly instead
// of silently keeping the default.
var settingKeys = map[string]bool{
	"strict_release": true,
	"metrics":        true,
	"tracing":        true,
	"log_level":      true,
}

// FromFile loads coordinator settings from path, picking the decoder by
// extension (.yaml, .yml or .json).
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load settings: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("load settings from %s: unrecognized extension %q (want .yaml, .yml or .json)", path, ext)
	}
}

// FromYAML decodes YAML coordinator settings.
func FromYAML(data []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("decode yaml settings: %w", err)
	}
	return fromDecoded(m)
}

// FromJSON decodes JSON coordinator settings.
func FromJSON(data []byte) (Config, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("decode json settings: %w", err)
	}
	return fromDecoded(m)
}

// fromDecoded wraps decoded file settings, rejecting keys the
// coordinator does not recognize. Configs built in code with New carry
// arbitrary keys; only the file loaders validate.
func fromDecoded(m map[string]any) (Config, error) {
	var unknown []string
	for key := range m {
		if !settingKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Config{}, fmt.Errorf("unrecognized settings: %s", strings.Join(unknown, ", "))
	}
	return New(m), nil
}
