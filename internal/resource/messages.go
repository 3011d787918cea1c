package resource

import (
	"fmt"
	"strings"
	"unicode"
)

func successText(action Action, name string) string {
	switch action {
	case ActionCreate:
		return fmt.Sprintf("%s created successfully", capitalize(name))
	case ActionDelete:
		return fmt.Sprintf("%s deleted successfully", capitalize(name))
	default:
		return fmt.Sprintf("%s updated successfully", capitalize(name))
	}
}

func failureText(action Action, name string) string {
	switch action {
	case ActionCreate:
		return fmt.Sprintf("Failed to create %s", name)
	case ActionDelete:
		return fmt.Sprintf("Failed to delete %s", name)
	default:
		return fmt.Sprintf("Failed to update %s", name)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// plural is good enough for the entity names the console uses.
func plural(name string) string {
	switch {
	case name == "":
		return "records"
	case strings.HasSuffix(name, "y") && !strings.HasSuffix(name, "ay"):
		return strings.TrimSuffix(name, "y") + "ies"
	case strings.HasSuffix(name, "s"), strings.HasSuffix(name, "settings"):
		return name
	default:
		return name + "s"
	}
}
