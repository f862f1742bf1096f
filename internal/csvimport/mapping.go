package csvimport

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNameColumnNotFound is returned when no header can be mapped to the name field
var ErrNameColumnNotFound = errors.New("csvimport: no name column found")

// Mapping links canonical fields to the header that feeds them.
// Unmapped fields are absent.
type Mapping map[Field]string

// CanonicalMapping maps every field to a header spelled like the field itself
func CanonicalMapping() Mapping {
	m := make(Mapping, len(Fields))
	for _, f := range Fields {
		m[f] = string(f)
	}
	return m
}

// DetectMapping picks, for each field, the first header (in header order) that is
// a known alias of it. The same header may serve several fields.
// Missing name column is a terminal error listing the headers that were found.
func DetectMapping(headers []string, aliases Aliases) (Mapping, error) {
	mapping := make(Mapping, len(Fields))

	for _, field := range Fields {
		for _, header := range headers {
			if aliases.Matches(field, header) {
				mapping[field] = header
				break
			}
		}
	}

	if _, ok := mapping[FieldName]; !ok {
		quoted := make([]string, len(headers))
		for i, h := range headers {
			quoted[i] = fmt.Sprintf("%q", h)
		}
		return mapping, fmt.Errorf("%w; detected headers: [%s]", ErrNameColumnNotFound, strings.Join(quoted, ", "))
	}

	return mapping, nil
}

// Value returns the trimmed cell of row that feeds field, or "" when unmapped
func (m Mapping) Value(row map[string]string, field Field) string {
	header, ok := m[field]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[header])
}

// ToStrings converts the mapping to plain strings for transport
func (m Mapping) ToStrings() map[string]string {
	out := make(map[string]string, len(m))
	for f, h := range m {
		out[string(f)] = h
	}
	return out
}
