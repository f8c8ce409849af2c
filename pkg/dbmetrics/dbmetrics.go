package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/barbershop-booking/pkg/metrics"
)

// DefaultCollectInterval период сбора статистики пула соединений
const DefaultCollectInterval = 15 * time.Second

// DBExecutor общий интерфейс для *sql.DB и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB обертка над *sql.DB, замеряющая длительность запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// Wrap оборачивает соединение и запускает сбор статистики пула до закрытия stopCh
func Wrap(db *sql.DB, m *metrics.Metrics, name string, interval time.Duration, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m, name: name}
	go wrapped.collectPoolStats(interval, stopCh)
	return wrapped
}

// WrapWithDefault то же, что Wrap, с интервалом DefaultCollectInterval
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	return Wrap(db, m, name, DefaultCollectInterval, stopCh)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *DB) observe(operation string, start time.Time) {
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordPoolStats()
		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (d *DB) recordPoolStats() {
	stats := d.db.Stats()
	d.metrics.DBOpenConnections.WithLabelValues(d.name).Set(float64(stats.OpenConnections))
	d.metrics.DBInUse.WithLabelValues(d.name).Set(float64(stats.InUse))
	d.metrics.DBIdle.WithLabelValues(d.name).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(d.name).Set(float64(stats.WaitCount))
}
