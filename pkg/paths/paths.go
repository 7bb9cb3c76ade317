// Package paths provides centralized path handling for flowpack. It resolves
// the host application's plugin directory with a consistent override order:
// environment, tool configuration, then the platform data directory.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvPluginsDir overrides the host plugin directory
	EnvPluginsDir = "FLOWPACK_PLUGINS_DIR"
)

// Default directories under the platform data home
const (
	// HostAppDir is the host application's directory name
	HostAppDir = "FlowLauncher"

	// PluginsDirName is the plugin directory name inside the host app dir
	PluginsDirName = "Plugins"
)

// PluginsDir returns the directory that packaged plugins are deployed into.
// Resolution order: FLOWPACK_PLUGINS_DIR, the configured override, then
// the platform data home (Roaming AppData on Windows, XDG data home
// elsewhere).
func PluginsDir(configured string) string {
	if dir := os.Getenv(EnvPluginsDir); dir != "" {
		return dir
	}
	if configured != "" {
		return configured
	}
	return filepath.Join(xdg.DataHome, HostAppDir, PluginsDirName)
}

// BuildDir returns the destination directory for one plugin build:
// {pluginsDir}/{name}-{version}.
func BuildDir(pluginsDir, name, version string) string {
	return filepath.Join(pluginsDir, name+"-"+version)
}
