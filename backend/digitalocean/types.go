package digitalocean

import (
	"github.com/neomantra/doinv/inventory"
)

type region struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Every v1 response carries a status field; anything but "OK" is a failure
type apiStatus struct {
	Status string `json:"status"`
}

type apiRegions struct {
	Status  string    `json:"status"`
	Regions []*region `json:"regions"`
}

type apiDroplets struct {
	Status   string               `json:"status"`
	Droplets []*inventory.Droplet `json:"droplets"`
}

type apiDroplet struct {
	Status  string             `json:"status"`
	Droplet *inventory.Droplet `json:"droplet"`
}
