package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

const queryStartKey = "metrics:query_start_time"

// RegisterMetricsCallbacks times every query, create, update, delete and raw
// statement issued through db and reports it to recorder
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	after := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) { stopTimer(tx, operation, recorder) }
	}

	cb := db.Callback()
	registrations := []func() error{
		func() error { return cb.Query().Before("gorm:query").Register("metrics:select_before", startTimer) },
		func() error { return cb.Query().After("gorm:query").Register("metrics:select_after", after("select")) },
		func() error { return cb.Create().Before("gorm:create").Register("metrics:insert_before", startTimer) },
		func() error {
			return cb.Create().After("gorm:create").Register("metrics:insert_after", after("insert"))
		},
		func() error { return cb.Update().Before("gorm:update").Register("metrics:update_before", startTimer) },
		func() error {
			return cb.Update().After("gorm:update").Register("metrics:update_after", after("update"))
		},
		func() error { return cb.Delete().Before("gorm:delete").Register("metrics:delete_before", startTimer) },
		func() error {
			return cb.Delete().After("gorm:delete").Register("metrics:delete_after", after("delete"))
		},
		func() error { return cb.Raw().Before("gorm:raw").Register("metrics:raw_before", startTimer) },
		func() error { return cb.Raw().After("gorm:raw").Register("metrics:raw_after", after("raw")) },
	}

	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}

func startTimer(tx *gorm.DB) {
	tx.InstanceSet(queryStartKey, time.Now())
}

func stopTimer(tx *gorm.DB, operation string, recorder MetricsRecorder) {
	v, ok := tx.InstanceGet(queryStartKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}
	table := tx.Statement.Table
	if table == "" {
		table = "unknown"
	}
	recorder.RecordDBQuery(operation, table, time.Since(start), tx.Error)
}

// StartDBStatsCollector reports connection pool stats every interval until
// the returned channel is closed
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
