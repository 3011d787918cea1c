package models

import (
	"sort"
	"strings"

	"github.com/01moynul/taptosell-console/internal/normalize"
)

// PlatformSettings is the flat key/value configuration singleton
// (commission rates, fee amounts, API credentials).
type PlatformSettings map[string]string

// NormalizeSettings flattens an upstream settings payload. It accepts both a
// plain object and a {"settings": [{setting_key, setting_value}, ...]} row list.
func NormalizeSettings(raw map[string]any) PlatformSettings {
	out := PlatformSettings{}
	if rows, ok := raw["settings"].([]any); ok {
		for _, row := range rows {
			m, ok := row.(map[string]any)
			if !ok {
				continue
			}
			key := normalize.ToString(normalize.First(m, "setting_key", "key"))
			if key != "" {
				out[key] = normalize.ToString(normalize.First(m, "setting_value", "value"))
			}
		}
		return out
	}
	for k, v := range raw {
		out[k] = normalize.ToString(v)
	}
	return out
}

// Keys returns the setting keys in sorted order.
func (s PlatformSettings) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsSecretKey reports whether a key holds a credential.
func IsSecretKey(key string) bool {
	k := strings.ToLower(key)
	for _, marker := range []string{"secret", "password", "token", "api_key", "apikey", "private"} {
		if strings.Contains(k, marker) {
			return true
		}
	}
	return false
}

// Masked returns a copy with credentials reduced to their last four characters.
func (s PlatformSettings) Masked() PlatformSettings {
	out := make(PlatformSettings, len(s))
	for k, v := range s {
		if IsSecretKey(k) && v != "" {
			runes := []rune(v)
			if len(runes) <= 4 {
				out[k] = "••••"
				continue
			}
			out[k] = "••••" + string(runes[len(runes)-4:])
			continue
		}
		out[k] = v
	}
	return out
}
