package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// UpdateDBStats copies a sql.DBStats snapshot into the pool gauges.
// Any other value is ignored.
func (m *Metrics) UpdateDBStats(stats interface{}) {
	m.safeExecute("UpdateDBStats", func() {
		s, ok := stats.(sql.DBStats)
		if !ok {
			return
		}
		m.DBConnectionsOpen.Set(float64(s.OpenConnections))
		m.DBConnectionsInUse.Set(float64(s.InUse))
		m.DBConnectionsIdle.Set(float64(s.Idle))
		m.DBConnectionsMax.Set(float64(s.MaxOpenConnections))
		m.DBConnectionWaitTotal.Set(float64(s.WaitCount))
		m.DBConnectionWaitDuration.Set(s.WaitDuration.Seconds())
	})
}

// RecordDBQuery records database query metrics
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		operation = strings.ToLower(operation)
		if table == "" {
			table = "unknown"
		}
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())

		if err != nil {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}
