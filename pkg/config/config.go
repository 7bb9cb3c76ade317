// Package config loads flowpack's own tool configuration. Settings are
// layered: built-in defaults, then an optional flowpack.toml in the plugin
// source root, then FLOWPACK_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/f0rgenet/flowpack/pkg/errors"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = "flowpack.toml"

// Config holds the resolved tool settings for one build invocation.
type Config struct {
	// PluginsDir overrides the host application's plugin directory.
	// Empty means resolve via paths.PluginsDir.
	PluginsDir string `koanf:"plugins_dir"`

	// IgnoreFile is the user ignore-rules file, relative to the source root.
	IgnoreFile string `koanf:"ignore_file"`

	// RequirementsFile is the pip requirements manifest, relative to the
	// source root. Its absence disables dependency vendoring.
	RequirementsFile string `koanf:"requirements_file"`

	// LibDir is the vendored-dependency directory name inside the build output.
	LibDir string `koanf:"lib_dir"`

	// PipCommand is the pip executable used for dependency installation.
	PipCommand string `koanf:"pip_command"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"plugins_dir":       "",
		"ignore_file":       ".gitignore",
		"requirements_file": "requirements.txt",
		"lib_dir":           "lib",
		"pip_command":       "pip",
	}
}

// Load resolves the configuration for a build rooted at sourceRoot.
func Load(sourceRoot string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	configPath := filepath.Join(sourceRoot, ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", ConfigFileName)
		}
	}

	err := k.Load(env.Provider("FLOWPACK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FLOWPACK_"))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
