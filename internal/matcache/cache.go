// Package matcache memoizes matrix file loads keyed by a crc16 checksum
// of the file's bytes, and collapses concurrent loads of the same file
// into one parse via singleflight — useful when a simulation harness
// spins up many workers that all open the same mother-matrix file.
// Not part of the core: the core (matrix/rateadapt/ldpc) never touches
// a filesystem.
package matcache

import (
	"os"
	"strconv"
	"sync"

	"github.com/howeyc/crc16"
	"github.com/qkdcore/ldpc4qkd/matrix"
	"golang.org/x/sync/singleflight"
)

// Loader parses raw file bytes into a *matrix.MotherMatrix. Implemented
// by format.ReadCSCMat/format.ReadBinCSCJSON wrapped to take bytes
// instead of a path, or supplied directly in tests.
type Loader func(path string, data []byte) (*matrix.MotherMatrix, error)

// Cache memoizes Loader results by (path, crc16(data)); a changed file
// on disk naturally misses the cache instead of serving stale data.
type Cache struct {
	group singleflight.Group
	load  Loader

	mu      sync.Mutex
	entries map[cacheKey]*matrix.MotherMatrix
}

type cacheKey struct {
	path string
	sum  uint16
}

// New builds a Cache that parses misses with load.
func New(load Loader) *Cache {
	return &Cache{load: load, entries: make(map[cacheKey]*matrix.MotherMatrix)}
}

// Get reads path, computes its crc16 checksum, and returns the cached
// MotherMatrix for that (path, checksum) pair if present; otherwise it
// parses via the configured Loader, caches, and returns the result.
// Concurrent Get calls for the same path+checksum share one parse.
func (c *Cache) Get(path string) (*matrix.MotherMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sum := crc16.ChecksumCCITT(data)
	key := cacheKey{path: path, sum: sum}

	c.mu.Lock()
	if mm, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return mm, nil
	}
	c.mu.Unlock()

	groupKey := path + ":" + strconv.Itoa(int(sum))
	v, err, _ := c.group.Do(groupKey, func() (interface{}, error) {
		mm, err := c.load(path, data)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = mm
		c.mu.Unlock()
		return mm, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*matrix.MotherMatrix), nil
}
