package inventory

import (
	"strconv"
)

// Build projects a flat droplet listing onto the grouped inventory and the
// address index. Per droplet, in listing order, it creates a singleton group
// keyed by the droplet id and appends the droplet address to the region and
// name groups. Droplets without an address are skipped entirely: they can
// neither be reached by an orchestrator nor resolved back from the index.
// (When a droplet would legitimately lack an address is not documented
// by the provider.)
func Build(droplets []*Droplet, regions RegionMap) (Inventory, Index) {
	inv := make(Inventory)
	idx := make(Index)

	for _, d := range droplets {
		addr := d.IPAddress
		if addr == "" {
			continue
		}

		// last write wins should two droplets ever share an address
		idx[addr] = Entry{RegionID: d.RegionID, DropletID: d.ID}

		inv.push(strconv.Itoa(d.ID), addr)
		inv.push(regions.Name(d.RegionID), addr)
		inv.push(d.Name, addr)
	}

	return inv, idx
}
