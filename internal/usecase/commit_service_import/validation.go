package commit_service_import

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if len(req.Rows) == 0 {
		return fmt.Errorf("%w: no rows to import", ErrInvalidInput)
	}

	if len(req.Rows) > domain.MaxImportRows {
		return fmt.Errorf("%w: at most %d rows can be imported at once", ErrInvalidInput, domain.MaxImportRows)
	}

	return nil
}
