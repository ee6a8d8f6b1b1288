// Package config holds the tunables of a tracking session.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "CDTRACK_"

type Config struct {
	// UpgradeThreshold is the game time in seconds at which UpgradeFrom
	// abilities become UpgradeTo.
	UpgradeThreshold int
	UpgradeFrom      string
	UpgradeTo        string

	DefaultUnit  string
	DefaultSlot1 string
	DefaultSlot2 string
	DefaultLevel int

	TickInterval time.Duration

	MonitorOn   bool
	MonitorPort int

	// RecordPath is the sqlite file name without extension. Empty disables
	// recording.
	RecordPath string

	CatalogFile   string
	FetchCatalog  bool
	DataDragonURL string
}

func Default() Config {
	return Config{
		UpgradeThreshold: 600,
		UpgradeFrom:      "Teleport",
		UpgradeTo:        "U. Teleport",
		DefaultUnit:      "Aatrox",
		DefaultSlot1:     "Flash",
		DefaultSlot2:     "Teleport",
		DefaultLevel:     6,
		TickInterval:     time.Second,
		MonitorOn:        false,
		MonitorPort:      0,
		DataDragonURL:    "https://ddragon.leagueoflegends.com",
	}
}

// Load starts from Default, overlays the given .env files and then the
// process environment. Missing .env files are skipped.
func Load(envFiles ...string) (Config, error) {
	fileVars := map[string]string{}

	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("failed to read %s: %w", f, err)
		}

		for k, v := range vars {
			fileVars[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}

		v, ok := fileVars[key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.apply(lookup); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	num := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}

		*dst = n
		return nil
	}

	flag := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return nil
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}

		*dst = b
		return nil
	}

	str("UPGRADE_FROM", &c.UpgradeFrom)
	str("UPGRADE_TO", &c.UpgradeTo)
	str("DEFAULT_UNIT", &c.DefaultUnit)
	str("DEFAULT_SLOT1", &c.DefaultSlot1)
	str("DEFAULT_SLOT2", &c.DefaultSlot2)
	str("RECORD_PATH", &c.RecordPath)
	str("CATALOG_FILE", &c.CatalogFile)
	str("DATA_DRAGON_URL", &c.DataDragonURL)

	if v, ok := lookup(EnvPrefix + "TICK_INTERVAL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTICK_INTERVAL: %w", EnvPrefix, err)
		}
		c.TickInterval = d
	}

	for _, err := range []error{
		num("UPGRADE_THRESHOLD", &c.UpgradeThreshold),
		num("DEFAULT_LEVEL", &c.DefaultLevel),
		num("MONITOR_PORT", &c.MonitorPort),
		flag("MONITOR", &c.MonitorOn),
		flag("FETCH_CATALOG", &c.FetchCatalog),
	} {
		if err != nil {
			return err
		}
	}

	return c.Validate()
}

// Validate checks the ranges the tracker relies on.
func (c Config) Validate() error {
	if c.UpgradeThreshold < 0 {
		return fmt.Errorf("upgrade threshold must not be negative, got %d",
			c.UpgradeThreshold)
	}

	if c.DefaultLevel < 1 || c.DefaultLevel > 18 {
		return fmt.Errorf("default level must be in [1,18], got %d",
			c.DefaultLevel)
	}

	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s",
			c.TickInterval)
	}

	return nil
}
