package config

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"wildpoker-server/internal/util"
)

// Config provides configuration for the wild poker server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Resolver struct {
		Workers int `yaml:"workers" envconfig:"workers"`
	} `yaml:"resolver"`
	Websocket struct {
		// PongWait is in seconds
		PongWait int `yaml:"pongWait" envconfig:"pong_wait"`
	} `yaml:"websocket"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr: ":5000",
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Resolver.Workers = 1
	cfg.Websocket.PongWait = 60
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("WILDPOKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		// an empty file decodes to io.EOF
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if err := envconfig.Process("wildpoker", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
