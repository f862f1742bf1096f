package commit_service_import

// Статусы обработки строки
const (
	StatusCreated = "created"
	StatusSkipped = "skipped"
	StatusError   = "error"
)

// Request модель запроса на создание услуг из проверенных строк
type Request struct {
	UserID         int64
	CompanyID      int64
	BatchID        string // Идентификатор из предпросмотра (для логов); пустой - генерируется заново
	SkipDuplicates bool
	Rows           []RowInput
}

// RowInput строка после предпросмотра; значения проверяются заново
type RowInput struct {
	RowNumber   int // 0 - номер по порядку
	Name        string
	Category    string
	Duration    *float64 // Минуты
	Price       *float64
	Description string
}

// Response итог импорта
type Response struct {
	BatchID   string
	CompanyID int64
	Created   int
	Skipped   int
	Failed    int
	Results   []RowResult // В порядке строк запроса
}

// RowResult результат обработки одной строки
type RowResult struct {
	RowNumber int
	Name      string
	Status    string
	ServiceID *int64
	Errors    []string
}
