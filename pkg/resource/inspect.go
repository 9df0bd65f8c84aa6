package resource

import (
	"sort"
	"time"
)

// EntryInfo describes one cache entry for inspection tooling.
type EntryInfo struct {
	Key       string    `json:"key"`
	Data      any       `json:"data"`
	Loading   bool      `json:"loading"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Entries returns a snapshot of every cache entry, ordered by key.
// Data values are the stored references, not copies.
func (c *Cache) Entries() []EntryInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	infos := make([]EntryInfo, 0, len(c.entries))
	for key, e := range c.entries {
		infos = append(infos, EntryInfo{
			Key:       key,
			Data:      e.data,
			Loading:   e.loading,
			Error:     e.err,
			UpdatedAt: e.updatedAt,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

// RestoreEntry installs an entry for key with the given data and loading
// flag, clearing any error and retaining no fetcher. Used by the
// hydration bridge; the restore bypasses Request, so no fetch is
// dispatched and nothing is notified.
func (c *Cache) RestoreEntry(key string, data any, loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{
		data:      data,
		loading:   loading,
		updatedAt: time.Now(),
	}
}
