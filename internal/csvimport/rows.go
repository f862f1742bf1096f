package csvimport

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Row validation messages
const (
	MsgNameRequired  = "Name is required"
	MsgNameTooLong   = "Name must be at most %d characters"
	MsgDurationRange = "Duration must be between %d and %d minutes"
	MsgPriceRange    = "Price must be between %d and %d"
)

// MappedServiceRow is one spreadsheet row interpreted against a mapping.
// Duration and Price are NaN when the cell could not be parsed.
type MappedServiceRow struct {
	RowNumber   int
	Name        string
	Category    string
	Duration    float64
	Price       float64
	Description string
	Errors      []string
	IsDuplicate bool
}

// Valid reports whether the row passed every validation rule.
// Duplicate status is independent of validity.
func (r MappedServiceRow) Valid() bool {
	return len(r.Errors) == 0
}

// NameSet holds normalized names of the currently active services
type NameSet map[string]struct{}

// NewNameSet builds a set from raw service names
func NewNameSet(names []string) NameSet {
	set := make(NameSet, len(names))
	for _, n := range names {
		set.Add(n)
	}
	return set
}

// Add inserts a name
func (s NameSet) Add(name string) {
	if normalized := domain.NormalizeServiceName(name); normalized != "" {
		s[normalized] = struct{}{}
	}
}

// Contains reports whether name is in the set, ignoring case and surrounding spaces
func (s NameSet) Contains(name string) bool {
	_, ok := s[domain.NormalizeServiceName(name)]
	return ok
}

// MapRow interprets a raw row. rowIndex is the 0-based position among data rows;
// the resulting RowNumber is 1-based. All failed rules are collected.
func MapRow(raw map[string]string, mapping Mapping, rowIndex int, existing NameSet) MappedServiceRow {
	row := MappedServiceRow{
		RowNumber:   rowIndex + 1,
		Name:        mapping.Value(raw, FieldName),
		Category:    mapping.Value(raw, FieldCategory),
		Duration:    ParseDuration(mapping.Value(raw, FieldDuration)),
		Price:       ParsePrice(mapping.Value(raw, FieldPrice)),
		Description: mapping.Value(raw, FieldDescription),
		Errors:      make([]string, 0),
	}

	row.Errors = validateRow(row)
	row.IsDuplicate = row.Name != "" && existing.Contains(row.Name)

	return row
}

// MapRows maps every data row in order
func MapRows(rows []map[string]string, mapping Mapping, existing NameSet) []MappedServiceRow {
	mapped := make([]MappedServiceRow, len(rows))
	for i, raw := range rows {
		mapped[i] = MapRow(raw, mapping, i, existing)
	}
	return mapped
}

func validateRow(row MappedServiceRow) []string {
	errs := make([]string, 0)

	switch {
	case strings.TrimSpace(row.Name) == "":
		errs = append(errs, MsgNameRequired)
	case len([]rune(row.Name)) > domain.MaxServiceNameLength:
		errs = append(errs, fmt.Sprintf(MsgNameTooLong, domain.MaxServiceNameLength))
	}

	if !inRange(row.Duration, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes) {
		errs = append(errs, fmt.Sprintf(MsgDurationRange, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes))
	}

	if !inRange(row.Price, domain.MinServicePrice, domain.MaxServicePrice) {
		errs = append(errs, fmt.Sprintf(MsgPriceRange, domain.MinServicePrice, domain.MaxServicePrice))
	}

	return errs
}

// inRange is false for NaN because every comparison with NaN is false
func inRange(v float64, lo, hi int) bool {
	return !math.IsNaN(v) && v >= float64(lo) && v <= float64(hi)
}
