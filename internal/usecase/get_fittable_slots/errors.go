package get_fittable_slots

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда сервис расписаний не знает компанию
	ErrCompanyNotFound = errors.New("company not found")

	// ErrServiceNotFound возвращается, когда одна из выбранных услуг не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
