package core

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParsePreferences parses a preferences document into a list of Preferences.
//
// The document may be JSON or YAML, and either a bare list of entries or an
// object with a "preferences" list. Each entry names its trait under "trait"
// ("category" and "name" are accepted as aliases) and may carry an integer
// "importance" in [1, 5], defaulting to DefaultImportance.
//
// Parsing is strict: a malformed document or entry fails the whole call,
// before any trait resolution happens.
func ParsePreferences(data []byte) ([]Preference, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return nil, fmt.Errorf("%w: not valid JSON or YAML: %w", ErrMalformedDocument, yerr)
		}
	}

	if wrapper, ok := doc.(map[string]any); ok {
		inner, ok := wrapper["preferences"]
		if !ok {
			inner = []any{}
		}
		doc = inner
	}

	entries, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list or an object with a \"preferences\" list", ErrMalformedDocument)
	}

	preferences := make([]Preference, 0, len(entries))
	for idx, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry at index %d must be an object", ErrInvalidPreference, idx)
		}

		trait := stringField(fields, "trait", "category", "name")
		if trait == "" {
			return nil, fmt.Errorf("%w: entry at index %d is missing a string trait", ErrInvalidPreference, idx)
		}

		importance := DefaultImportance
		if raw, ok := fields["importance"]; ok {
			importance, ok = intValue(raw)
			if !ok {
				return nil, fmt.Errorf("%w: preference %q has non-integer importance %v", ErrInvalidPreference, trait, raw)
			}
		}

		pref := Preference{Trait: trait, Importance: importance}
		if err := ValidatePreference(&pref); err != nil {
			return nil, fmt.Errorf("preference %q: %w", trait, err)
		}

		preferences = append(preferences, pref)
	}

	return preferences, nil
}

// ParsePreferencesFile reads and parses a preferences document from disk.
func ParsePreferencesFile(path string) ([]Preference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePreferences(data)
}

// stringField returns the first non-empty string value among the named keys.
func stringField(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := fields[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// intValue coerces a decoded scalar to an int.
// JSON decodes numbers as float64, YAML as int; numeric strings are accepted
// the way the original loader accepted them.
func intValue(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
