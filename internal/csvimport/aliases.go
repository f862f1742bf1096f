// Package csvimport maps arbitrary service spreadsheets onto the service catalog:
// it detects which column feeds which field, coerces durations and prices, and
// validates rows so the user can review them before anything is created.
package csvimport

import (
	"fmt"
	"strings"
)

// Field is a canonical target attribute of an imported service
type Field string

const (
	FieldName        Field = "name"
	FieldCategory    Field = "category"
	FieldDuration    Field = "duration"
	FieldPrice       Field = "price"
	FieldDescription Field = "description"
)

// Fields lists canonical fields in detection order
var Fields = []Field{FieldName, FieldCategory, FieldDuration, FieldPrice, FieldDescription}

// ParseField converts a string to a canonical field
func ParseField(s string) (Field, error) {
	normalized := Field(normalizeHeader(s))
	for _, f := range Fields {
		if f == normalized {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown import field %q", s)
}

// Aliases maps each canonical field to the header spellings that refer to it.
// Spellings are compared trimmed and case-insensitively.
type Aliases map[Field][]string

// DefaultAliases returns the built-in alias table
func DefaultAliases() Aliases {
	return Aliases{
		FieldName: {
			"name", "service name", "service", "treatment", "treatment name",
			"service title", "title",
		},
		FieldCategory: {
			"category", "service category", "category name", "type", "group",
		},
		FieldDuration: {
			"duration", "duration (mins)", "duration (minutes)", "duration_minutes",
			"duration mins", "length", "time", "minutes", "mins",
		},
		FieldPrice: {
			"price", "cost", "amount", "price (£)", "price (gbp)", "rate", "fee",
		},
		FieldDescription: {
			"description", "details", "notes", "desc", "info", "summary",
		},
	}
}

// With returns a copy of the table extended with extra spellings.
// Unknown fields are rejected so a typo in configuration is not silently ignored.
func (a Aliases) With(extra map[string][]string) (Aliases, error) {
	merged := make(Aliases, len(a))
	for field, spellings := range a {
		merged[field] = append([]string(nil), spellings...)
	}

	for key, spellings := range extra {
		field, err := ParseField(key)
		if err != nil {
			return nil, err
		}
		merged[field] = append(merged[field], spellings...)
	}

	return merged, nil
}

// Matches reports whether header is a known spelling of field
func (a Aliases) Matches(field Field, header string) bool {
	normalized := normalizeHeader(header)
	if normalized == "" {
		return false
	}
	for _, alias := range a[field] {
		if normalizeHeader(alias) == normalized {
			return true
		}
	}
	return false
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
