package inventory

import (
	"encoding/json"
)

// UnknownRegion is the group name used for droplets whose region id
// is missing from the region map
const UnknownRegion = "Unknown Region"

// Droplet represents a single virtual machine as returned by the
// DigitalOcean droplet listing
type Droplet struct {
	ID               int    `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	ImageID          int    `json:"image_id" yaml:"image_id"`
	SizeID           int    `json:"size_id" yaml:"size_id"`
	RegionID         int    `json:"region_id" yaml:"region_id"`
	BackupsActive    bool   `json:"backups_active" yaml:"backups_active"`
	IPAddress        string `json:"ip_address" yaml:"ip_address"`
	PrivateIPAddress string `json:"private_ip_address" yaml:"private_ip_address"`
	Locked           bool   `json:"locked" yaml:"locked"`
	Status           string `json:"status" yaml:"status"`
	CreatedAt        string `json:"created_at" yaml:"created_at"`
}

// RegionMap maps region ids to region slugs
type RegionMap map[int]string

// Name resolves a region id to its slug, falling back to UnknownRegion
// for ids missing from the map
func (rm RegionMap) Name(id int) string {
	if name, found := rm[id]; found {
		return name
	}
	return UnknownRegion
}

// Inventory groups droplet addresses by droplet id, region name and
// droplet name. Group keys of all three kinds share the string key space
type Inventory map[string][]string

// push appends an element to a group that may not exist yet
func (inv Inventory) push(key string, element string) {
	inv[key] = append(inv[key], element)
}

// Entry is a reverse lookup record pointing from an address back to the
// droplet it belongs to
type Entry struct {
	RegionID  int
	DropletID int
}

// Index maps droplet addresses to their identity
type Index map[string]Entry

// MarshalJSON renders an entry as a [region_id, droplet_id] pair,
// the format the index artifact has always used on disk
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{e.RegionID, e.DropletID})
}

// UnmarshalJSON is the inverse of MarshalJSON
func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	e.RegionID = pair[0]
	e.DropletID = pair[1]
	return nil
}
