package service

import "github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД.
// Транзакция, если она есть, берется из контекста (см. pkg/txmanager)
type DBExecutor = dbmetrics.DBExecutor
