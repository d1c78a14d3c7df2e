// Package config resolves fontcode settings from the environment and from
// optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvAssets   = "FONTCODE_ASSETS"
	EnvLogLevel = "FONTCODE_LOG_LEVEL"
	EnvDialect  = "FONTCODE_DIALECT"
)

// Defaults used when a setting is not configured.
const (
	DefaultAssetsDir = "assets"
	DefaultLogLevel  = "info"
	DefaultDialect   = "c51"
)

// envFiles are read in order; later files take precedence.
var envFiles = []string{".env", ".env.local"}

// Config holds resolved settings.
type Config struct {
	AssetsDir string
	LogLevel  string
	Dialect   string
}

// Load resolves the configuration. Process environment variables win over
// .env.local, which wins over .env; both files are looked up in dir and are
// optional.
func Load(dir string) (Config, error) {
	var paths []string
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	fileEnv := map[string]string{}
	if len(paths) > 0 {
		var err error
		fileEnv, err = godotenv.Read(paths...)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read env files: %w", err)
		}
	}

	lookup := func(key, def string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		if v, ok := fileEnv[key]; ok && v != "" {
			return v
		}
		return def
	}

	return Config{
		AssetsDir: lookup(EnvAssets, DefaultAssetsDir),
		LogLevel:  lookup(EnvLogLevel, DefaultLogLevel),
		Dialect:   lookup(EnvDialect, DefaultDialect),
	}, nil
}
