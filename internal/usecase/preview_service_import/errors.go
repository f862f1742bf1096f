package preview_service_import

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrFileTooLarge возвращается, когда файл превышает допустимый размер
	ErrFileTooLarge = errors.New("file is too large")

	// ErrUnreadableFile возвращается, когда файл не удалось разобрать
	ErrUnreadableFile = errors.New("file could not be parsed")

	// ErrNameColumnNotFound возвращается, когда не найдена колонка с названием услуги
	ErrNameColumnNotFound = errors.New("no name column found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// NameColumnError ошибка отсутствия колонки с названием; содержит найденные заголовки
// errors.Is(err, ErrNameColumnNotFound) для неё возвращает true
type NameColumnError struct {
	Headers []string
}

func (e *NameColumnError) Error() string {
	return fmt.Sprintf("%s: detected headers [%s]", ErrNameColumnNotFound, strings.Join(e.Headers, ", "))
}

func (e *NameColumnError) Unwrap() error {
	return ErrNameColumnNotFound
}
