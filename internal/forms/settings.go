package forms

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var settingKey = regexp.MustCompile(`^[a-z0-9_]+$`)

var hundred = decimal.NewFromInt(100)

// SettingsForm is the platform settings page. Only the keys present are written.
type SettingsForm struct {
	Values map[string]string `json:"settings"`
}

func (f SettingsForm) Validate() error {
	errs := ValidationErrors{}
	if len(f.Values) == 0 {
		errs["settings"] = "settings must not be empty"
		return errs
	}
	for key, value := range f.Values {
		if !settingKey.MatchString(key) {
			errs[key] = key + " is not a valid setting name"
			continue
		}
		if !strings.HasSuffix(key, "_rate") && !strings.HasSuffix(key, "_fee") {
			continue
		}
		d := checkMoney(errs, key, NumberInput(value), false)
		if _, bad := errs[key]; !bad && strings.HasSuffix(key, "_rate") && d.GreaterThan(hundred) {
			errs[key] = key + " must be at most 100"
		}
	}
	return errs.orNil()
}

func (f SettingsForm) Payload() map[string]any {
	payload := make(map[string]any, len(f.Values))
	for k, v := range f.Values {
		payload[k] = strings.TrimSpace(v)
	}
	return payload
}
