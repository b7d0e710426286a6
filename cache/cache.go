// Package cache persists the built inventory and its address index as a
// pair of JSON artifacts on local disk. Freshness is decided by the
// modification time of the inventory artifact plus a configured max age;
// there is no partial validity and no locking between invocations.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/neomantra/doinv/inventory"
)

// Artifact names kept compatible with the original inventory script
const (
	inventoryFile = "ansible-digitalocean.cache"
	indexFile     = "ansible-digitalocean.index"
)

// Cache manages the two cache artifacts under a single directory
type Cache struct {
	dir    string
	maxAge time.Duration
}

// New creates a cache over the given directory. A zero maxAge means the
// artifacts are always considered stale
func New(dir string, maxAge time.Duration) *Cache {
	return &Cache{dir: dir, maxAge: maxAge}
}

// InventoryPath returns the path of the inventory artifact
func (c *Cache) InventoryPath() string {
	return path.Join(c.dir, inventoryFile)
}

// IndexPath returns the path of the index artifact
func (c *Cache) IndexPath() string {
	return path.Join(c.dir, indexFile)
}

// Valid reports whether the cached data is fresh enough to serve. It is
// true only when the inventory artifact exists, its modification time plus
// the max age is still in the future, and the index artifact exists too.
// Any missing file or expired timestamp forces a rebuild
func (c *Cache) Valid() bool {
	st, err := os.Stat(c.InventoryPath())
	if err != nil {
		return false
	}
	if !st.ModTime().Add(c.maxAge).After(time.Now()) {
		return false
	}
	if _, err := os.Stat(c.IndexPath()); err != nil {
		return false
	}
	return true
}

// SaveInventory writes the inventory artifact
func (c *Cache) SaveInventory(inv inventory.Inventory) error {
	return c.write(c.InventoryPath(), inv)
}

// SaveIndex writes the index artifact
func (c *Cache) SaveIndex(idx inventory.Index) error {
	return c.write(c.IndexPath(), idx)
}

// LoadInventory reads the inventory artifact back. Missing or malformed
// content is a hard error: callers are expected to check Valid first
func (c *Cache) LoadInventory() (inventory.Inventory, error) {
	inv := make(inventory.Inventory)
	if err := c.read(c.InventoryPath(), &inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// LoadIndex reads the index artifact back
func (c *Cache) LoadIndex() (inventory.Index, error) {
	idx := make(inventory.Index)
	if err := c.read(c.IndexPath(), &idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// write serializes data with sorted keys and stable indentation so that
// repeated writes of unchanged data produce byte-identical artifacts
func (c *Cache) write(filename string, data interface{}) error {
	if _, err := os.Stat(c.dir); err != nil && os.IsNotExist(err) {
		if err = os.MkdirAll(c.dir, 0755); err != nil {
			return fmt.Errorf("error creating cache dir: %s", err)
		}
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, out, 0644)
}

func (c *Cache) read(filename string, data interface{}) error {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, data)
}
