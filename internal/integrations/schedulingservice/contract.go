package schedulingservice

import (
	"context"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SlotsFetcher источник свободных слотов (клиент или кеширующая обертка)
type SlotsFetcher interface {
	GetOpenSlots(ctx context.Context, companyID int64, date string) (*OpenSlotsResponse, error)
}

// Cache хранилище сериализованных ответов
// Get возвращает found=false, если ключа нет
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
