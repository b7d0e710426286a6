// Package digitalocean queries the DigitalOcean v1 API and keeps the
// local inventory cache in sync with it.
package digitalocean

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/neomantra/doinv/cache"
	"github.com/neomantra/doinv/config"
	"github.com/neomantra/doinv/inventory"
	"github.com/neomantra/doinv/log"
)

// Backend fetches droplets and regions from the DigitalOcean API and
// serves the grouped inventory, refetching whenever the cache artifacts
// are stale or a refresh is forced
type Backend struct {
	url      string
	clientID string
	apiKey   string
	cache    *cache.Cache
	client   *http.Client

	inv inventory.Inventory
	idx inventory.Index
}

// APIError is returned when the API answers with a non-OK status field.
// It carries the raw response payload for diagnostics
type APIError struct {
	Status  string
	Payload []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("digitalocean api status %q: %s", e.Status, e.Payload)
}

// New creates and configures a DigitalOcean backend
func New(cfg *config.Config) *Backend {
	return &Backend{
		url:      cfg.APIURL,
		clientID: cfg.ClientID,
		apiKey:   cfg.APIKey,
		cache:    cache.New(cfg.CachePath, time.Duration(cfg.CacheMaxAge)*time.Second),
		client:   &http.Client{},
		inv:      make(inventory.Inventory),
		idx:      make(inventory.Index),
	}
}

// Inventory exported backend method
func (b *Backend) Inventory() inventory.Inventory {
	return b.inv
}

// Index exported backend method
func (b *Backend) Index() inventory.Index {
	return b.idx
}

// Load serves the inventory from the cache artifacts unless they are
// stale or refresh is set, in which case it triggers Reload
func (b *Backend) Load(refresh bool) error {
	if refresh || !b.cache.Valid() {
		return b.Reload()
	}

	inv, err := b.cache.LoadInventory()
	if err != nil {
		return err
	}
	idx, err := b.cache.LoadIndex()
	if err != nil {
		return err
	}
	b.inv = inv
	b.idx = idx
	log.Debugf("inventory loaded from cache at %s", b.cache.InventoryPath())
	return nil
}

// Reload forces a full refetch from the API, rebuilds both structures
// from scratch and rewrites the cache artifacts
func (b *Backend) Reload() error {
	regions, err := b.Regions()
	if err != nil {
		return err
	}

	droplets, err := b.Droplets()
	if err != nil {
		return err
	}

	inv, idx := inventory.Build(droplets, regions)
	if err = b.cache.SaveInventory(inv); err != nil {
		return err
	}
	if err = b.cache.SaveIndex(idx); err != nil {
		return err
	}

	b.inv = inv
	b.idx = idx
	log.Debugf("inventory rebuilt from api, %d droplets, cache saved to %s",
		len(droplets), b.cache.InventoryPath())
	return nil
}

// HostInfo resolves a single droplet by its address. A miss in the index
// is treated as staleness: the cache is rebuilt once and the lookup is
// retried. A host still missing after that is a normal outcome, reported
// with found set to false rather than an error
func (b *Backend) HostInfo(host string) (*inventory.Droplet, bool, error) {
	if len(b.idx) == 0 {
		idx, err := b.cache.LoadIndex()
		if err != nil {
			return nil, false, err
		}
		b.idx = idx
	}

	entry, found := b.idx[host]
	if !found {
		if err := b.Reload(); err != nil {
			return nil, false, err
		}
		entry, found = b.idx[host]
		if !found {
			// the droplet might not exist anymore
			return nil, false, nil
		}
	}

	droplet, err := b.Droplet(entry.DropletID)
	if err != nil {
		return nil, false, err
	}
	return droplet, true, nil
}

// Regions fetches the region listing and returns an id to slug mapping.
// Regions without a slug are keyed by their numeric id instead
func (b *Backend) Regions() (inventory.RegionMap, error) {
	data := new(apiRegions)
	if err := b.get("/regions", data); err != nil {
		return nil, err
	}

	rm := make(inventory.RegionMap)
	for _, r := range data.Regions {
		slug := r.Slug
		if slug == "" {
			slug = strconv.Itoa(r.ID)
		}
		rm[r.ID] = slug
	}
	return rm, nil
}

// Droplets fetches the full droplet listing
func (b *Backend) Droplets() ([]*inventory.Droplet, error) {
	data := new(apiDroplets)
	if err := b.get("/droplets", data); err != nil {
		return nil, err
	}
	return data.Droplets, nil
}

// Droplet fetches a single droplet record by id, bypassing the cache
func (b *Backend) Droplet(id int) (*inventory.Droplet, error) {
	data := new(apiDroplet)
	if err := b.get(fmt.Sprintf("/droplets/%d", id), data); err != nil {
		return nil, err
	}
	return data.Droplet, nil
}

// get performs an authenticated API call. Credentials ride along as
// query parameters, which is how the v1 API authenticates
func (b *Backend) get(path string, out interface{}) error {
	params := url.Values{}
	params.Set("client_id", b.clientID)
	params.Set("api_key", b.apiKey)

	log.Debugf("fetching %s", path)
	req, err := http.NewRequest("GET", fmt.Sprintf("%s%s?%s", b.url, path, params.Encode()), nil)
	if err != nil {
		return err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// path only: the full url carries the credentials
	if resp.StatusCode != 200 {
		return fmt.Errorf("status code %d while fetching %s", resp.StatusCode, path)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	st := new(apiStatus)
	if err = json.Unmarshal(data, st); err != nil {
		return err
	}
	if st.Status != "OK" {
		return &APIError{Status: st.Status, Payload: data}
	}

	return json.Unmarshal(data, out)
}
