package config

import (
	"github.com/caarlos0/env/v11"
)

const DefaultServerURL = "http://localhost:8080"

type Config struct {
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	// ContentPath is a YAML content file; empty uses the built-in page.
	ContentPath  string `env:"LANDING_CONTENT"`
	CheckUpdates bool   `env:"LANDING_CHECK_UPDATES" envDefault:"true"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

func read(environ map[string]string) (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{Environment: environ})
}
