package config

import (
	"os"
	"strings"

	"github.com/viert/properties"
)

// DefaultAPIURL is the DigitalOcean API endpoint
const DefaultAPIURL = "https://api.digitalocean.com"

const (
	defaultCachePath   = "."
	defaultCacheMaxAge = 0
)

// Config represents the resolved tool configuration. It is assembled once
// from the settings file, then overridden by environment variables and
// explicit arguments, in that order
type Config struct {
	ClientID    string
	APIKey      string
	APIURL      string
	CachePath   string
	CacheMaxAge int // seconds
	LogFile     string
}

// ExpandPath helper helps to expand ~ as a home directory
// as well as it expands any env variable usage in path
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		path = "$HOME/" + path[2:]
	}
	return os.ExpandEnv(path)
}

// Read reads and parses the ini settings file. A missing file is not an
// error: credentials may arrive via environment or arguments instead
func Read(filename string) (*Config, error) {
	cfg := &Config{
		APIURL:      DefaultAPIURL,
		CachePath:   defaultCachePath,
		CacheMaxAge: defaultCacheMaxAge,
	}

	props, err := properties.Load(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	cid, err := props.GetString("digitalocean.client_id")
	if err == nil {
		cfg.ClientID = cid
	}

	key, err := props.GetString("digitalocean.api_key")
	if err == nil {
		cfg.APIKey = key
	}

	url, err := props.GetString("digitalocean.api_url")
	if err == nil && url != "" {
		cfg.APIURL = url
	}

	cp, err := props.GetString("digitalocean.cache_path")
	if err == nil && cp != "" {
		cfg.CachePath = ExpandPath(cp)
	}

	cma, err := props.GetInt("digitalocean.cache_max_age")
	if err == nil {
		cfg.CacheMaxAge = cma
	}

	lf, err := props.GetString("digitalocean.log_file")
	if err == nil {
		cfg.LogFile = ExpandPath(lf)
	}

	return cfg, nil
}
