package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all server settings. Values come from an optional YAML file
// (via -config or CONFIG_PATH) with environment variables taking precedence.
type Config struct {
	Addr      string `yaml:"addr" env:"INVENTORIA_ADDR" env-default:":8080" env-description:"listen address"`
	DBPath    string `yaml:"db_path" env:"INVENTORIA_DB" env-default:"inventoria.sqlite3" env-description:"SQLite database path"`
	JWTSecret string `yaml:"jwt_secret" env:"INVENTORIA_JWT_SECRET" env-description:"JWT signing key (generated and persisted if empty)"`
	UploadDir string `yaml:"upload_dir" env:"INVENTORIA_UPLOAD_DIR" env-default:"uploads" env-description:"directory for uploaded images"`
	LogPath   string `yaml:"log_path" env:"INVENTORIA_LOG" env-description:"log file path (stdout/stderr only if empty)"`
}

// Load reads the configuration. A config file is optional; without one,
// environment variables and defaults apply.
func Load() (*Config, error) {
	var cfg Config

	path := fetchConfigPath()
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
