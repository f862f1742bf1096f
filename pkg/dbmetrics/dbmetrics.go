package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
)

// DefaultStatsInterval период сбора статистики connection pool
const DefaultStatsInterval = 15 * time.Second

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и обёрток над ними
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor транзакция
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txKey struct{}

// WithTx кладёт транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext достаёт транзакцию из контекста
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txKey{}).(TxExecutor)
	return tx, ok
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db
}

// SqlTxWrapper адаптирует *sql.Tx к TxExecutor
type SqlTxWrapper struct {
	*sql.Tx
}

// DB обёртка над *sql.DB, снимающая метрики длительности запросов
// При m == nil работает как обычный *sql.DB
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает *sql.DB без сбора статистики pool
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики pool
// Сбор останавливается при закрытии stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	if m != nil {
		go wrapped.collectStats(DefaultStatsInterval, stopCh)
	}
	return wrapped
}

// ExecContext выполняет запрос без возврата строк
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий одну строку
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, row.Err())
	return row
}

// BeginTx начинает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin", start, err)
	if err != nil {
		return nil, err
	}
	return &SqlTxWrapper{Tx: tx}, nil
}

func (d *DB) observe(operation string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil && err != sql.ErrNoRows {
		d.metrics.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBOpenConns.Set(float64(stats.OpenConnections))
			d.metrics.DBInUseConns.Set(float64(stats.InUse))
			d.metrics.DBIdleConns.Set(float64(stats.Idle))
			d.metrics.DBWaitCountTotal.Set(float64(stats.WaitCount))
		}
	}
}
