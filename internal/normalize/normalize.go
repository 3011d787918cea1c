// Package normalize turns loosely-typed upstream JSON values into the
// consistent in-memory types the console works with.
//
// Every function here is total: malformed input degrades to a safe default
// (0, false, "", an empty list, the zero time) and never returns an error.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ToNumber coerces v into a finite float64.
// Numbers pass through, numeric strings are parsed, booleans become 0/1.
// nil, non-numeric strings, NaN and infinities yield 0.
func ToNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case decimal.Decimal:
		f = n.InexactFloat64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToDecimal coerces v into a decimal using the same rules as ToNumber.
// Numeric strings are parsed exactly, so "49.99" stays 49.99.
func ToDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.NewFromFloat(ToNumber(v))
}

// ToInt truncates ToNumber(v) to an int.
func ToInt(v any) int {
	return int(ToNumber(v))
}

// ToInt64 truncates ToNumber(v) to an int64.
func ToInt64(v any) int64 {
	return int64(ToNumber(v))
}

// ToBool accepts true, non-zero numbers and the strings
// "1", "true", "yes", "on" (case-insensitive). Everything else is false.
func ToBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	case nil:
		return false
	}
	return ToNumber(v) != 0
}

// ToString renders v as a string. nil becomes "".
func ToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	case decimal.Decimal:
		return s.String()
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return strconv.FormatFloat(ToNumber(s), 'f', -1, 64)
	}
	return ""
}

// ID renders an identifier field. Upstream ids arrive as numbers or strings.
func ID(v any) string {
	return strings.TrimSpace(ToString(v))
}

// Default returns fallback when s is blank.
func Default(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// StringList normalizes a list field that may arrive as an array,
// a JSON-encoded array string, or a comma-separated string.
// Entries are trimmed and empty entries dropped. Malformed JSON yields an empty list.
func StringList(v any) []string {
	out := []string{}
	switch list := v.(type) {
	case nil:
		return out
	case []string:
		for _, item := range list {
			out = appendTrimmed(out, item)
		}
	case []any:
		for _, item := range list {
			out = appendTrimmed(out, ToString(item))
		}
	case string:
		trimmed := strings.TrimSpace(list)
		if strings.HasPrefix(trimmed, "[") {
			var decoded []any
			if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
				return out
			}
			return StringList(decoded)
		}
		for _, part := range strings.Split(trimmed, ",") {
			out = appendTrimmed(out, part)
		}
	}
	return out
}

func appendTrimmed(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return out
	}
	return append(out, s)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ToTime parses timestamps in the formats the platform emits:
// RFC3339, MySQL DATETIME, plain dates, or unix seconds. Anything else is the zero time.
func ToTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}
		}
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed
			}
		}
		if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(secs, 0).UTC()
		}
		return time.Time{}
	case nil:
		return time.Time{}
	}
	secs := ToInt64(v)
	if secs == 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0).UTC()
}

// Map returns v as a JSON object, or nil when it is something else.
// Nested objects sometimes arrive JSON-encoded as strings.
func Map(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case string:
		var decoded map[string]any
		if err := json.Unmarshal([]byte(strings.TrimSpace(m)), &decoded); err != nil {
			return nil
		}
		return decoded
	}
	return nil
}

// First returns the first non-nil value among the given keys of raw.
// Upstream screens disagree on field casing (shipping_cost vs shippingCost).
func First(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
