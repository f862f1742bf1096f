package preview_service_import

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxFileSize int64) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Filename) == "" {
		return fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}

	if len(req.Data) == 0 {
		return fmt.Errorf("%w: file is empty", ErrUnreadableFile)
	}

	if maxFileSize > 0 && int64(len(req.Data)) > maxFileSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, len(req.Data), maxFileSize)
	}

	return nil
}
