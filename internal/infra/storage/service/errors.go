package service

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrDuplicateService возвращается при попытке создать активную услугу с уже существующим названием
	ErrDuplicateService = errors.New("service.repository: active service with the same name already exists")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("service.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
