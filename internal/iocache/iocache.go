// Package iocache provides durable storage for cached series payloads and
// run history, backed by SQLite, MySQL, or PostgreSQL.
package iocache

import (
	"sync"

	"github.com/peakform/peakform/internal/contract"
)

// CacheStoreManager manages the series cache and history store instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	series       contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetSeriesStore returns the CacheStore for series payloads.
func (mgr *CacheStoreManager) GetSeriesStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.series
}

// GetHistoryStore returns the HistoryStore for recorded runs.
func (mgr *CacheStoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
