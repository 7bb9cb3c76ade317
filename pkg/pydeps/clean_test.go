package pydeps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkTree(t *testing.T, root string, dirs []string, files []string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
	for _, f := range files {
		require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(root, f)), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), 0644))
	}
}

func TestCleanRemovesInstallerClutter(t *testing.T) {
	libDir := t.TempDir()
	mkTree(t, libDir,
		[]string{
			"requests-2.31.0.dist-info",
			"requests/__pycache__",
			"pyperclip.egg-info",
			"somepkg/tests",
			"somepkg/test",
			"somepkg/htmlcov",
			"somepkg/.pytest_cache",
		},
		[]string{
			"requests/api.py",
			"requests/__pycache__/api.cpython-311.pyc",
			"requests/models.pyc",
			"somepkg/mod.py",
			"somepkg/mod_test.py",
			"somepkg/test_utils.py",
			"somepkg/tests/test_all.py",
			"somepkg/.coverage",
		})

	Clean(libDir)

	removed := []string{
		"requests-2.31.0.dist-info",
		"requests/__pycache__",
		"pyperclip.egg-info",
		"requests/models.pyc",
		"somepkg/tests",
		"somepkg/test",
		"somepkg/htmlcov",
		"somepkg/.pytest_cache",
		"somepkg/mod_test.py",
		"somepkg/test_utils.py",
		"somepkg/.coverage",
	}
	for _, p := range removed {
		_, err := os.Stat(filepath.Join(libDir, p))
		assert.True(t, os.IsNotExist(err), "%q should have been removed", p)
	}

	kept := []string{
		"requests/api.py",
		"somepkg/mod.py",
	}
	for _, p := range kept {
		_, err := os.Stat(filepath.Join(libDir, p))
		assert.NoError(t, err, "%q should survive cleanup", p)
	}
}

func TestCleanMissingDirIsNoop(t *testing.T) {
	// Must not panic or create anything
	missing := filepath.Join(t.TempDir(), "lib")
	Clean(missing)

	_, err := os.Stat(missing)
	assert.True(t, os.IsNotExist(err))
}

func TestMatchesCleanup(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"requests-2.31.0.dist-info", true},
		{"__pycache__", true},
		{"module.pyc", true},
		{"test_thing.py", true},
		{"tests", true},
		{"api.py", false},
		{"testdata", false},
		{"contest.py", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchesCleanup(tt.name), "matchesCleanup(%q)", tt.name)
	}
}
