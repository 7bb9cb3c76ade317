package paths_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/f0rgenet/flowpack/pkg/paths"
)

func TestPluginsDirEnvOverride(t *testing.T) {
	t.Setenv(paths.EnvPluginsDir, "/env/plugins")

	assert.Equal(t, "/env/plugins", paths.PluginsDir(""))
	// Environment wins over the configured value
	assert.Equal(t, "/env/plugins", paths.PluginsDir("/configured/plugins"))
}

func TestPluginsDirConfigured(t *testing.T) {
	t.Setenv(paths.EnvPluginsDir, "")

	assert.Equal(t, "/configured/plugins", paths.PluginsDir("/configured/plugins"))
}

func TestPluginsDirDefault(t *testing.T) {
	t.Setenv(paths.EnvPluginsDir, "")

	got := paths.PluginsDir("")
	want := filepath.Join(paths.HostAppDir, paths.PluginsDirName)
	assert.True(t, strings.HasSuffix(got, want), "PluginsDir() = %q, want suffix %q", got, want)
}

func TestBuildDir(t *testing.T) {
	got := paths.BuildDir("/plugins", "Demo", "1.0")
	assert.Equal(t, filepath.Join("/plugins", "Demo-1.0"), got)
}
