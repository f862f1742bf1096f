package preview_service_import

import "github.com/m04kA/SMC-SchedulingService/internal/csvimport"

// Request модель запроса на предпросмотр импорта
type Request struct {
	UserID         int64
	CompanyID      int64
	Filename       string // Имя файла определяет формат (.csv или .xlsx)
	Data           []byte
	SkipDuplicates bool // Влияет только на ImportableCount
}

// Response результат разбора файла для экрана проверки
type Response struct {
	BatchID         string // Идентификатор попытки импорта, передается в commit
	CompanyID       int64
	Filename        string
	Headers         []string
	Mapping         csvimport.Mapping
	Rows            []csvimport.MappedServiceRow
	Summary         csvimport.Summary
	ImportableCount int
}
