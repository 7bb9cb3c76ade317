package pydeps

import (
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/f0rgenet/flowpack/pkg/logging"
)

// cleanupPatterns name the pip artifacts stripped from the vendored lib
// directory. Matching is glob-style against base names only, with no
// anchoring and no negation; this pass is intentionally much simpler than
// the packaging ignore rules.
var cleanupPatterns = []string{
	"*.dist-info",
	"*.egg-info",
	"__pycache__",
	"*.pyc",
	"*.pyo",
	"*.pyd",
	".pytest_cache",
	".coverage",
	"htmlcov",
	"tests",
	"test",
	"*_test.py",
	"*_tests.py",
	"test_*.py",
}

// Clean removes installer clutter from the vendored lib directory. It walks
// bottom-up so a directory's contents are handled before the directory
// itself, is a no-op when libDir does not exist, and swallows every failure:
// cleanup is best-effort and never fails a build.
func Clean(libDir string) {
	logger := logging.GetLogger("pydeps")

	if _, err := os.Stat(libDir); err != nil {
		return
	}

	logger.Debug().Str("path", libDir).Msg("Cleaning lib directory")
	cleanDir(libDir, logger)
}

func cleanDir(dir string, logger zerolog.Logger) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read directory during cleanup")
		return
	}

	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			cleanDir(entryPath, logger)
		}

		if !matchesCleanup(entry.Name()) {
			continue
		}

		if err := os.RemoveAll(entryPath); err != nil {
			logger.Warn().Err(err).Str("path", entryPath).Msg("Failed to remove during cleanup")
			continue
		}
		logger.Debug().Str("path", entryPath).Msg("Removed")
	}
}

func matchesCleanup(name string) bool {
	for _, pattern := range cleanupPatterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
