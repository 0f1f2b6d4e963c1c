package catalog

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes one loaded index per (path, modification time), so a
// rewritten catalog file is picked up on the next load while concurrent
// callers for the same key share a single parse.
type Cache struct {
	group singleflight.Group

	mu  sync.Mutex
	key string
	idx *Index
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) Load(path string) (*Index, error) {
	key := cacheKey(path)

	c.mu.Lock()
	if c.idx != nil && c.key == key {
		idx := c.idx
		c.mu.Unlock()
		return idx, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		return Load(path)
	})
	if err != nil {
		return nil, err
	}
	idx := v.(*Index)

	c.mu.Lock()
	c.key = key
	c.idx = idx
	c.mu.Unlock()

	return idx, nil
}

func cacheKey(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return path + "|absent"
	}
	return fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size())
}
