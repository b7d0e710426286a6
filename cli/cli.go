// Package cli implements the doinv invocation surface: list mode (the
// default), single-host mode and the cache refresh switch, with settings
// resolved from the ini file, environment variables and arguments.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/neomantra/doinv/backend/digitalocean"
	"github.com/neomantra/doinv/config"
	"github.com/neomantra/doinv/log"
	"github.com/neomantra/doinv/serializer"
	"github.com/neomantra/doinv/term"
)

const credentialsHelp = `could not find DigitalOcean values for client_id and api_key.
They must be specified via the ini file, command line arguments (--client-id and --api-key),
or environment variables (DIGITALOCEAN_CLIENT_ID and DIGITALOCEAN_API_KEY)`

// overridden during build with ldflags
var version = "dev"

// New assembles the root command
func New() *cli.Command {
	return &cli.Command{
		Name:    "doinv",
		Usage:   "DigitalOcean droplet inventory for automation tools",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "list",
				Usage: "list droplet groups (default mode)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "emit the full record of a single droplet by its address",
			},
			&cli.BoolFlag{
				Name:  "refresh-cache",
				Usage: "force a refresh by querying the DigitalOcean API",
			},
			&cli.StringFlag{
				Name:    "client-id",
				Usage:   "DigitalOcean client ID",
				Sources: cli.EnvVars("DIGITALOCEAN_CLIENT_ID"),
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "DigitalOcean API key",
				Sources: cli.EnvVars("DIGITALOCEAN_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "cache-path",
				Usage:   "directory holding the cache artifacts",
				Sources: cli.EnvVars("DIGITALOCEAN_CACHE_PATH"),
			},
			&cli.IntFlag{
				Name:    "cache-max-age",
				Usage:   "maximum age of the cache artifacts in seconds",
				Sources: cli.EnvVars("DIGITALOCEAN_CACHE_MAX_AGE"),
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the ini settings file",
				Value: "digitalocean.ini",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format (json or yaml)",
				Value: string(serializer.FormatJSON),
			},
		},
		Action: run,
	}
}

// Run executes the root command and terminates the process on failure
func Run(args []string) {
	if err := New().Run(context.Background(), args); err != nil {
		term.Errorf("%s\n", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	cfg, err := resolve(cmd)
	if err != nil {
		return err
	}

	if err := log.Initialize(cfg.LogFile); err != nil {
		term.Warnf("error opening log file: %s\n", err)
	}

	if cfg.ClientID == "" || cfg.APIKey == "" {
		return errors.New(credentialsHelp)
	}

	format := serializer.Format(cmd.String("format"))
	if !format.IsValid() {
		return fmt.Errorf("unknown output format %q", format)
	}

	be := digitalocean.New(cfg)
	if err := be.Load(cmd.Bool("refresh-cache")); err != nil {
		return err
	}

	if host := cmd.String("host"); host != "" {
		return emitHost(be, host, format)
	}
	return emit(format, be.Inventory())
}

// resolve applies the configuration precedence: settings file, then
// environment variables, then explicit arguments
func resolve(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Read(config.ExpandPath(cmd.String("config")))
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	if cmd.IsSet("client-id") {
		cfg.ClientID = cmd.String("client-id")
	}
	if cmd.IsSet("api-key") {
		cfg.APIKey = cmd.String("api-key")
	}
	if cmd.IsSet("cache-path") {
		cfg.CachePath = config.ExpandPath(cmd.String("cache-path"))
	}
	if cmd.IsSet("cache-max-age") {
		cfg.CacheMaxAge = int(cmd.Int("cache-max-age"))
	}

	return cfg, nil
}

func emitHost(be *digitalocean.Backend, host string, format serializer.Format) error {
	droplet, found, err := be.HostInfo(host)
	if err != nil {
		return err
	}
	if !found {
		// not an error: the host may simply be gone
		return emit(format, struct{}{})
	}
	return emit(format, droplet)
}

func emit(format serializer.Format, data interface{}) error {
	out, err := serializer.Marshal(format, data)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
