package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"structhole/layout"
)

const configFileName = "structhole.toml"

type fileConfig struct {
	Layout layoutSection `toml:"layout"`
}

type layoutSection struct {
	Cacheline uint64 `toml:"cacheline"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, layout.UsageErr("config", err)
	}
	return &cfg, nil
}

// resolveCacheline picks the cacheline size for this run: an explicit flag
// wins over the config file, which wins over the built-in default. When no
// --config path is given, a structhole.toml in the working directory is
// used if present.
func resolveCacheline(flagSet bool, flagValue uint64, configPath string) (uint64, error) {
	if flagSet {
		if flagValue == 0 {
			return 0, layout.UsageErr("cacheline", errors.New("cacheline size must be positive"))
		}
		return flagValue, nil
	}

	path := configPath
	if path == "" {
		if _, err := os.Stat(configFileName); err == nil {
			path = configFileName
		} else if !errors.Is(err, os.ErrNotExist) {
			return 0, layout.UsageErr("config", fmt.Errorf("stat %q: %w", configFileName, err))
		}
	}
	if path == "" {
		return layout.DefaultCachelineSize, nil
	}

	cfg, err := loadFileConfig(path)
	if err != nil {
		return 0, err
	}
	if cfg.Layout.Cacheline == 0 {
		return layout.DefaultCachelineSize, nil
	}
	return cfg.Layout.Cacheline, nil
}
