package csvimport

import (
	"math"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// Row statuses shown on the review screen
const (
	StatusValid     = "valid"
	StatusDuplicate = "duplicate"
	StatusError     = "error"
)

// Status classifies a row the same way Summarize counts it
func (r MappedServiceRow) Status() string {
	switch {
	case !r.Valid():
		return StatusError
	case r.IsDuplicate:
		return StatusDuplicate
	default:
		return StatusValid
	}
}

// Summary counts rows by status for the review screen
type Summary struct {
	Total     int
	Valid     int // valid and not a duplicate
	Duplicate int // valid and a duplicate
	Error     int // invalid, whatever the duplicate flag
}

// Summarize counts mapped rows
func Summarize(rows []MappedServiceRow) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		switch r.Status() {
		case StatusError:
			s.Error++
		case StatusDuplicate:
			s.Duplicate++
		default:
			s.Valid++
		}
	}
	return s
}

// ServicePayload is the creation payload for one imported service
type ServicePayload struct {
	RowNumber       int
	Name            string
	Category        *string
	DurationMinutes int
	Price           float64
	Description     *string
}

// IsImportable reports whether a row is submitted for creation
func IsImportable(row MappedServiceRow, skipDuplicates bool) bool {
	return row.Valid() && (!row.IsDuplicate || !skipDuplicates)
}

// ImportableRows returns payloads for valid rows, leaving duplicates out when skipDuplicates is set
func ImportableRows(rows []MappedServiceRow, skipDuplicates bool) []ServicePayload {
	payloads := make([]ServicePayload, 0, len(rows))
	for _, r := range rows {
		if !IsImportable(r, skipDuplicates) {
			continue
		}
		payloads = append(payloads, ToPayload(r))
	}
	return payloads
}

// ToPayload projects a row; empty category and description become nil
func ToPayload(r MappedServiceRow) ServicePayload {
	return ServicePayload{
		RowNumber:       r.RowNumber,
		Name:            r.Name,
		Category:        ptr.NilIfZero(r.Category),
		DurationMinutes: int(math.Round(r.Duration)),
		Price:           r.Price,
		Description:     ptr.NilIfZero(r.Description),
	}
}

// ToService converts a payload into a catalog entry of the company
func (p ServicePayload) ToService(companyID int64) *domain.Service {
	return &domain.Service{
		CompanyID:       companyID,
		Name:            p.Name,
		Category:        p.Category,
		DurationMinutes: p.DurationMinutes,
		Price:           p.Price,
		Description:     p.Description,
		IsActive:        true,
	}
}
