package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/meverselabs/yfacfarm/cmd/config"
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/service/apiserver"
	"github.com/pkg/errors"
)

// Config is the node configuration read from the toml file
type Config struct {
	StoreDriver string  `toml:"store_driver"`
	StorePath   string  `toml:"store_path"`
	APIBind     string  `toml:"api_bind"`
	APIWorkers  int     `toml:"api_workers"`
	LogLevel    string  `toml:"log_level"`
	Development bool    `toml:"development"`
	Genesis     Genesis `toml:"genesis"`
}

func defaultConfig() *Config {
	return &Config{
		StoreDriver: "leveldb",
		StorePath:   "./_data",
		APIBind:     ":48000",
		APIWorkers:  apiserver.DefaultWorkers,
		LogLevel:    "info",
	}
}

// loadConfig reads the toml file over the defaults and then applies the environment
func loadConfig(path string, envPath string) (*Config, error) {
	cfg := defaultConfig()
	if len(path) > 0 {
		if err := config.LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg, envPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv loads the env file without overriding the process environment
// and copies the FARM_ variables into the config
func applyEnv(cfg *Config, envPath string) error {
	if len(envPath) > 0 {
		if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "env")
		}
	}
	if v, has := os.LookupEnv("FARM_STORE_DRIVER"); has {
		cfg.StoreDriver = v
	}
	if v, has := os.LookupEnv("FARM_STORE_PATH"); has {
		cfg.StorePath = v
	}
	if v, has := os.LookupEnv("FARM_API_BIND"); has {
		cfg.APIBind = v
	}
	if v, has := os.LookupEnv("FARM_API_WORKERS"); has {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "FARM_API_WORKERS")
		}
		cfg.APIWorkers = n
	}
	if v, has := os.LookupEnv("FARM_LOG_LEVEL"); has {
		cfg.LogLevel = v
	}
	return nil
}

// parseAddress accepts the hex form or the base58 form printed by the listings
func parseAddress(s string) (common.Address, error) {
	if strings.HasPrefix(s, "0x") || len(s) == common.AddressLength*2 {
		return common.ParseAddress(s)
	}
	return common.ParseShortString(s)
}
