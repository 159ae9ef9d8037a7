package orchestrator

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/goliatone/go-gridgen/pkg/record"
)

// datasetCache memoizes fully-loaded Datasets by source location for the
// lifetime of the orchestrator. Concurrent first-time loads of the same key
// collapse into a single pipeline execution via singleflight, which is what
// keeps the orphan bucket from ever being injected twice for one URL. Failed
// loads are never stored, so a later call retries the pipeline.
type datasetCache struct {
	mu      sync.RWMutex
	entries map[string]record.Dataset
	group   singleflight.Group
}

func newDatasetCache() *datasetCache {
	return &datasetCache{
		entries: make(map[string]record.Dataset),
	}
}

func (c *datasetCache) getOrLoad(key string, load func() (record.Dataset, error)) (record.Dataset, error) {
	c.mu.RLock()
	dataset, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return dataset, nil
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		dataset, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return dataset, nil
		}

		dataset, err := load()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = dataset
		c.mu.Unlock()
		return dataset, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(record.Dataset), nil
}

// loaded reports whether the cache holds an entry for key. Test hook and
// introspection helper; never used to guard loads.
func (c *datasetCache) loaded(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}
