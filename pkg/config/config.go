// Package config loads treeforge's configuration.
//
// Layering, lowest to highest precedence: embedded defaults, the user
// config file in the XDG config dir, then TREEFORGE_* environment
// variables (TREEFORGE_CREATE_DIR_MODE → create.dir_mode).
package config

import (
	_ "embed"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/treeforge/treeforge/pkg/errors"
	"github.com/treeforge/treeforge/pkg/paths"
)

//go:embed defaults.toml
var defaultConfig []byte

// Config holds the resolved settings.
type Config struct {
	Create CreateConfig
}

// CreateConfig controls materialization.
type CreateConfig struct {
	// DirMode is applied to created directories.
	DirMode fs.FileMode
	// FileMode is applied to created empty files. Copied files keep the
	// mode of their source.
	FileMode fs.FileMode
}

// Load builds the configuration from defaults, the user config file (if it
// exists) and the environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. User config file, if present
	cfgPath := paths.ConfigFile()
	if _, err := os.Stat(cfgPath); err == nil {
		if err := k.Load(file.Provider(cfgPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", cfgPath)
		}
	}

	// 3. Environment: TREEFORGE_CREATE_DIR_MODE → create.dir_mode
	if err := k.Load(env.Provider("TREEFORGE_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "TREEFORGE_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment config")
	}

	return fromKoanf(k)
}

// Default returns the built-in configuration, ignoring file and env.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults are compiled in; this cannot fail at runtime.
		panic(err)
	}
	cfg, err := fromKoanf(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	dirMode, err := parseMode(k.String("create.dir_mode"))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "invalid create.dir_mode")
	}
	fileMode, err := parseMode(k.String("create.file_mode"))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "invalid create.file_mode")
	}

	return &Config{
		Create: CreateConfig{
			DirMode:  dirMode,
			FileMode: fileMode,
		},
	}, nil
}

// parseMode reads an octal mode string like "0755".
func parseMode(s string) (fs.FileMode, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil {
		return 0, err
	}
	return fs.FileMode(n), nil
}

// rawBytesProvider implements koanf.Provider for in-memory config bytes.
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}
