package dbmetrics

import (
	"database/sql"
	"time"
)

// CollectPoolStats периодически публикует статистику пула соединений
// до закрытия stopCh
func CollectPoolStats(db *sql.DB, observer Observer, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	publish := func() {
		stats := db.Stats()
		observer.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle, stats.WaitCount)
	}

	publish()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			publish()
		}
	}
}
