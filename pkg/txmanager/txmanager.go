package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
)

var (
	// ErrBeginTx возвращается, если не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, если не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner источник транзакций (реализуется *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функцию внутри транзакции
// Транзакция передаётся через контекст, репозитории достают её через dbmetrics.GetExecutor
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoSerializable выполняет fn в транзакции с уровнем SERIALIZABLE
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует уже открытую транзакцию
	if _, ok := dbmetrics.TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}
