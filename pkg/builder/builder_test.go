package builder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f0rgenet/flowpack/pkg/builder"
	"github.com/f0rgenet/flowpack/pkg/config"
	flowerrors "github.com/f0rgenet/flowpack/pkg/errors"
)

func testConfig(pluginsDir string) *config.Config {
	return &config.Config{
		PluginsDir:       pluginsDir,
		IgnoreFile:       ".gitignore",
		RequirementsFile: "requirements.txt",
		LibDir:           "lib",
		PipCommand:       "pip",
	}
}

// stubVendoring replaces the pip collaborators and records the calls.
type stubVendoring struct {
	installCalls []string
	cleanCalls   []string
	installErr   error
}

func (s *stubVendoring) install(sourceRoot, buildPath string) error {
	s.installCalls = append(s.installCalls, buildPath)
	return s.installErr
}

func (s *stubVendoring) clean(libDir string) {
	s.cleanCalls = append(s.cleanCalls, libDir)
}

func newTestBuilder(t *testing.T, sourceRoot, pluginsDir string) (*builder.Builder, *stubVendoring) {
	t.Helper()
	t.Setenv("FLOWPACK_PLUGINS_DIR", "")
	stub := &stubVendoring{}
	b := builder.New(sourceRoot, testConfig(pluginsDir))
	b.Install = stub.install
	b.Clean = stub.clean
	return b, stub
}

func TestBuildEndToEnd(t *testing.T) {
	sourceRoot := t.TempDir()
	pluginsDir := t.TempDir()
	writeTree(t, sourceRoot, map[string]string{
		"plugin.json":     `{"Name": "Demo", "Version": "1.0"}`,
		"main.py":         "print('hi')",
		".git/config":     "[core]",
		"tests/test_x.py": "def test(): pass",
		"assets/logo.png": "png",
	})

	b, stub := newTestBuilder(t, sourceRoot, pluginsDir)
	result, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(pluginsDir, "Demo-1.0"), result.BuildPath)
	assert.Equal(t, 3, result.FilesCopied)
	assert.Equal(t, "Demo", result.Manifest.Name)
	assert.Equal(t, []string{"assets/logo.png", "main.py", "plugin.json"}, listTree(t, result.BuildPath))

	require.Len(t, stub.installCalls, 1)
	assert.Equal(t, result.BuildPath, stub.installCalls[0])
	require.Len(t, stub.cleanCalls, 1)
	assert.Equal(t, filepath.Join(result.BuildPath, "lib"), stub.cleanCalls[0])
}

func TestBuildAppliesUserIgnoreFile(t *testing.T) {
	sourceRoot := t.TempDir()
	pluginsDir := t.TempDir()
	writeTree(t, sourceRoot, map[string]string{
		"plugin.json": `{"Name": "Demo", "Version": "1.0"}`,
		"main.py":     "x",
		"scratch.tmp": "x",
	})
	require.NoError(t, os.WriteFile(filepath.Join(sourceRoot, ".gitignore"), []byte("*.tmp\n"), 0644))

	b, _ := newTestBuilder(t, sourceRoot, pluginsDir)
	result, err := b.Build()
	require.NoError(t, err)

	// .gitignore itself is excluded by the defaults, *.tmp by the user rule
	assert.Equal(t, []string{"main.py", "plugin.json"}, listTree(t, result.BuildPath))
	assert.Equal(t, 2, result.FilesIgnored)
}

func TestBuildAbortsBeforeCopyOnBadManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantCode flowerrors.ErrorCode
	}{
		{"missing_version", `{"Name": "Demo"}`, flowerrors.ErrManifestField},
		{"malformed_json", `{"Name": }`, flowerrors.ErrManifestParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sourceRoot := t.TempDir()
			pluginsDir := t.TempDir()
			writeTree(t, sourceRoot, map[string]string{
				"plugin.json": tt.manifest,
				"main.py":     "x",
			})

			b, stub := newTestBuilder(t, sourceRoot, pluginsDir)
			_, err := b.Build()
			require.Error(t, err)
			assert.True(t, flowerrors.IsErrorCode(err, tt.wantCode), "got %v", err)

			// Nothing was copied and no destination directory was created
			entries, readErr := os.ReadDir(pluginsDir)
			require.NoError(t, readErr)
			assert.Empty(t, entries)
			assert.Empty(t, stub.installCalls)
		})
	}
}

func TestBuildMissingManifestFile(t *testing.T) {
	sourceRoot := t.TempDir()
	pluginsDir := t.TempDir()
	writeTree(t, sourceRoot, map[string]string{"main.py": "x"})

	b, _ := newTestBuilder(t, sourceRoot, pluginsDir)
	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, flowerrors.IsErrorCode(err, flowerrors.ErrManifestMissing))
}

func TestBuildInstallerFailureIsFatal(t *testing.T) {
	sourceRoot := t.TempDir()
	pluginsDir := t.TempDir()
	writeTree(t, sourceRoot, map[string]string{
		"plugin.json": `{"Name": "Demo", "Version": "1.0"}`,
		"main.py":     "x",
	})

	b, stub := newTestBuilder(t, sourceRoot, pluginsDir)
	stub.installErr = flowerrors.New(flowerrors.ErrInstallFailed, "pip install failed")

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, flowerrors.IsErrorCode(err, flowerrors.ErrInstallFailed))
	assert.Empty(t, stub.cleanCalls, "cleanup does not run when install fails")
}

func TestBuildTwiceReplacesDestination(t *testing.T) {
	sourceRoot := t.TempDir()
	pluginsDir := t.TempDir()
	writeTree(t, sourceRoot, map[string]string{
		"plugin.json": `{"Name": "Demo", "Version": "1.0"}`,
		"main.py":     "x",
	})

	b, _ := newTestBuilder(t, sourceRoot, pluginsDir)
	first, err := b.Build()
	require.NoError(t, err)

	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, first.BuildPath, second.BuildPath)
	assert.Equal(t, listTree(t, first.BuildPath), []string{"main.py", "plugin.json"})
	assert.Equal(t, first.FilesCopied, second.FilesCopied)
}
