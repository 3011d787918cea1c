package normalize

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestToNumberIsIdempotent(t *testing.T) {
	inputs := []any{
		nil,
		42,
		int64(-7),
		3.5,
		"49.99",
		"  12 ",
		"abc",
		"",
		true,
		json.Number("8.25"),
		math.NaN(),
		math.Inf(1),
		[]string{"1"},
	}

	for _, in := range inputs {
		once := ToNumber(in)
		twice := ToNumber(once)
		if once != twice {
			t.Fatalf("ToNumber not idempotent for %#v: %v then %v", in, once, twice)
		}
	}
}

func TestToNumberNonNumericYieldsZero(t *testing.T) {
	for _, in := range []any{nil, "abc", "", "12abc", math.NaN(), math.Inf(-1), "NaN", "Inf", map[string]any{}} {
		if got := ToNumber(in); got != 0 {
			t.Fatalf("ToNumber(%#v) = %v, want 0", in, got)
		}
	}
}

func TestToNumberParsesNumericStrings(t *testing.T) {
	cases := map[string]float64{
		"49.99": 49.99,
		" 100 ": 100,
		"-3":    -3,
		"1e3":   1000,
	}
	for in, want := range cases {
		if got := ToNumber(in); got != want {
			t.Fatalf("ToNumber(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestToDecimalKeepsExactStrings(t *testing.T) {
	got := ToDecimal("49.99")
	if !got.Equal(decimal.RequireFromString("49.99")) {
		t.Fatalf("ToDecimal(\"49.99\") = %s", got)
	}
	if !ToDecimal("oops").IsZero() {
		t.Fatalf("expected zero for malformed decimal")
	}
	if !ToDecimal(nil).IsZero() {
		t.Fatalf("expected zero for nil")
	}
	if !ToDecimal(12.5).Equal(decimal.NewFromFloat(12.5)) {
		t.Fatalf("expected float passthrough")
	}
}

func TestStringListNormalizesAllShapes(t *testing.T) {
	want := []string{"a", "b"}
	inputs := []any{
		`["a","b"]`,
		"a, b",
		[]any{"a", "b"},
		[]string{" a ", "b", ""},
		"a,,b,",
	}
	for _, in := range inputs {
		if got := StringList(in); !reflect.DeepEqual(got, want) {
			t.Fatalf("StringList(%#v) = %#v, want %#v", in, got, want)
		}
	}
}

func TestStringListDegradesToEmpty(t *testing.T) {
	for _, in := range []any{nil, `["a",`, "", 17, map[string]any{"a": 1}} {
		got := StringList(in)
		if got == nil || len(got) != 0 {
			t.Fatalf("StringList(%#v) = %#v, want empty non-nil list", in, got)
		}
	}
}

func TestToBool(t *testing.T) {
	truthy := []any{true, 1, 1.0, "1", "true", "TRUE", "yes", "on"}
	falsy := []any{false, 0, "0", "false", "", nil, "nope"}
	for _, in := range truthy {
		if !ToBool(in) {
			t.Fatalf("ToBool(%#v) = false, want true", in)
		}
	}
	for _, in := range falsy {
		if ToBool(in) {
			t.Fatalf("ToBool(%#v) = true, want false", in)
		}
	}
}

func TestToTime(t *testing.T) {
	want := time.Date(2025, 11, 14, 10, 30, 0, 0, time.UTC)
	for _, in := range []any{"2025-11-14T10:30:00Z", "2025-11-14 10:30:00", float64(want.Unix()), "1763116200"} {
		if got := ToTime(in); !got.Equal(want) {
			t.Fatalf("ToTime(%#v) = %v, want %v", in, got, want)
		}
	}
	if !ToTime("soon").IsZero() {
		t.Fatalf("expected zero time for garbage")
	}
}

func TestToStringAndID(t *testing.T) {
	if got := ID(float64(12)); got != "12" {
		t.Fatalf("ID(12.0) = %q", got)
	}
	if got := ToString(nil); got != "" {
		t.Fatalf("ToString(nil) = %q", got)
	}
	if got := Default("  ", "N/A"); got != "N/A" {
		t.Fatalf("Default = %q", got)
	}
}

func TestFirstAndMap(t *testing.T) {
	raw := map[string]any{"shippingCost": "5", "meta": `{"a":1}`}
	if got := First(raw, "shipping_cost", "shippingCost"); got != "5" {
		t.Fatalf("First = %#v", got)
	}
	if m := Map(raw["meta"]); m == nil || ToNumber(m["a"]) != 1 {
		t.Fatalf("Map did not decode nested JSON: %#v", m)
	}
	if Map("nope") != nil {
		t.Fatalf("expected nil map for garbage")
	}
}
