package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvLogLevel = "CREATIONAL_LOG_LEVEL"
	EnvDemos    = "CREATIONAL_DEMOS"
)

// DefaultEnvFile is read when present; a missing file is not an error.
const DefaultEnvFile = ".env"

// PrototypeSeed describes an extra prototype registered before the prototype demo.
type PrototypeSeed struct {
	Key     string `yaml:"key" validate:"required"`
	Variant int    `yaml:"variant" validate:"oneof=1 2"`
	Value   int    `yaml:"value"`
	Extra   int    `yaml:"extra"`
}

// Config drives the catalog CLI.
type Config struct {
	LogLevel   string          `yaml:"log_level" validate:"oneof=debug info warn error"`
	Demos      []string        `yaml:"demos" validate:"dive,required"`
	Prototypes []PrototypeSeed `yaml:"prototypes" validate:"dive"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Loader layers configuration sources: defaults, then the YAML file, then the
// .env file, then the process environment. Later sources win.
type Loader struct {
	// File is an optional YAML file.
	File string
	// EnvFile is an optional dotenv file. Defaults to DefaultEnvFile.
	EnvFile string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// Load runs the default Loader against path (may be empty).
func Load(path string) (Config, error) {
	return (&Loader{File: path}).Load()
}

// Load builds and validates a Config.
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	if strings.TrimSpace(l.File) != "" {
		raw, err := os.ReadFile(l.File)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", l.File, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", l.File, err)
		}
	}

	dotenv, err := l.readEnvFile()
	if err != nil {
		return Config{}, err
	}
	getenv := l.getenv(dotenv)

	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getenv(EnvDemos); v != "" {
		cfg.Demos = splitList(v)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks cfg against its struct tags.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func (l *Loader) readEnvFile() (map[string]string, error) {
	path := l.EnvFile
	if path == "" {
		path = DefaultEnvFile
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return vals, nil
}

// getenv prefers the process environment over dotenv values.
func (l *Loader) getenv(dotenv map[string]string) func(string) string {
	base := l.Getenv
	if base == nil {
		base = os.Getenv
	}
	return func(k string) string {
		if v := base(k); v != "" {
			return v
		}
		return dotenv[k]
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
