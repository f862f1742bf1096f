package schedulingservice

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда у сервиса расписаний нет такой компании
	ErrCompanyNotFound = errors.New("schedulingservice client: company not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("schedulingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("schedulingservice client: invalid response")

	// ErrCache возвращается при ошибках работы с кешем слотов
	ErrCache = errors.New("schedulingservice cache: error")
)
