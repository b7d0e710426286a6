package inventory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	droplets := []*Droplet{
		{ID: 1, Name: "web1", RegionID: 5, IPAddress: "1.2.3.4"},
		{ID: 2, Name: "web2", RegionID: 5, IPAddress: ""},
	}
	regions := RegionMap{5: "nyc1"}

	inv, idx := Build(droplets, regions)

	assert.Equal(t, Inventory{
		"1":    {"1.2.3.4"},
		"nyc1": {"1.2.3.4"},
		"web1": {"1.2.3.4"},
	}, inv)

	// the unaddressable droplet contributes nothing
	assert.Equal(t, Index{"1.2.3.4": {RegionID: 5, DropletID: 1}}, idx)
}

func TestBuildUnknownRegion(t *testing.T) {
	droplets := []*Droplet{
		{ID: 7, Name: "stray", RegionID: 9, IPAddress: "10.0.0.7"},
	}

	inv, _ := Build(droplets, RegionMap{5: "nyc1"})

	assert.Equal(t, []string{"10.0.0.7"}, inv[UnknownRegion])
}

func TestBuildGroupOrder(t *testing.T) {
	droplets := []*Droplet{
		{ID: 1, Name: "web", RegionID: 5, IPAddress: "10.0.0.1"},
		{ID: 2, Name: "web", RegionID: 5, IPAddress: "10.0.0.2"},
		{ID: 3, Name: "db", RegionID: 5, IPAddress: "10.0.0.3"},
	}

	inv, idx := Build(droplets, RegionMap{5: "ams1"})

	// groups keep the upstream listing order
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}, inv["ams1"])
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, inv["web"])
	assert.Equal(t, []string{"10.0.0.3"}, inv["db"])
	assert.Len(t, idx, 3)
}

func TestRegionMapName(t *testing.T) {
	rm := RegionMap{1: "sfo1"}
	assert.Equal(t, "sfo1", rm.Name(1))
	assert.Equal(t, UnknownRegion, rm.Name(2))
}

func TestEntryJSON(t *testing.T) {
	out, err := json.Marshal(Entry{RegionID: 5, DropletID: 1})
	require.NoError(t, err)
	assert.Equal(t, "[5,1]", string(out))

	var e Entry
	require.NoError(t, json.Unmarshal(out, &e))
	assert.Equal(t, Entry{RegionID: 5, DropletID: 1}, e)
}

func TestIndexJSONRoundTrip(t *testing.T) {
	idx := Index{
		"1.2.3.4": {RegionID: 5, DropletID: 1},
		"5.6.7.8": {RegionID: 9, DropletID: 3},
	}

	out, err := json.Marshal(idx)
	require.NoError(t, err)

	restored := make(Index)
	require.NoError(t, json.Unmarshal(out, &restored))
	assert.Equal(t, idx, restored)
}
