package forms

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/01moynul/taptosell-console/internal/normalize"
	"github.com/shopspring/decimal"
)

// NumberInput is a numeric form field as typed by the user. The dashboard
// may send it as a JSON string ("49.99") or a JSON number (49.99).
type NumberInput string

func (n *NumberInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = NumberInput(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = NumberInput(num.String())
	return nil
}

// Decimal parses the input. ok is false when the text is not a number.
func (n NumberInput) Decimal() (d decimal.Decimal, ok bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(string(n)))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ListInput is a list form field typed either as a comma string or as an array.
type ListInput []string

func (l *ListInput) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = normalize.StringList(raw)
	return nil
}

// checkMoney validates a non-negative amount field.
func checkMoney(errs ValidationErrors, field string, in NumberInput, required bool) decimal.Decimal {
	if strings.TrimSpace(string(in)) == "" {
		if required {
			errs[field] = field + " is required"
		}
		return decimal.Zero
	}
	d, ok := in.Decimal()
	if !ok {
		errs[field] = field + " must be a number"
		return decimal.Zero
	}
	if d.IsNegative() {
		errs[field] = field + " must be zero or more"
	}
	return d
}

// number renders a decimal so that encoding/json writes it as a JSON number.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
