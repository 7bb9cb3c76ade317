package builder

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/f0rgenet/flowpack/pkg/errors"
	"github.com/f0rgenet/flowpack/pkg/ignore"
	"github.com/f0rgenet/flowpack/pkg/logging"
)

// CopyTree mirrors the filtered source tree into destRoot. An existing
// destRoot is deleted and recreated, never merged: every build is a full
// rebuild.
//
// The walk is top-down and prunes excluded directories before descending, so
// nothing beneath an excluded directory is ever visited, counted, or matched
// by deeper rules. Surviving files are copied with their permission bits and
// modification time preserved.
//
// Filesystem failures come back as PATH_ACCESS errors, anything else as
// BUILD_FAILED; both abort the build with no partial-state recovery.
func CopyTree(srcRoot, destRoot string, set *ignore.Set) (copied, ignored int, err error) {
	logger := logging.GetLogger("builder.copy")

	if _, statErr := os.Stat(destRoot); statErr == nil {
		logger.Info().Str("path", destRoot).Msg("Removing previous build")
	}
	if err := os.RemoveAll(destRoot); err != nil {
		return 0, 0, classifyCopyError(err)
	}
	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return 0, 0, classifyCopyError(err)
	}

	walkErr := filepath.WalkDir(srcRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == srcRoot {
			return nil
		}

		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}
		relPath := ignore.NormalizePath(rel)

		if entry.IsDir() {
			if set.Excluded(relPath) {
				logger.Debug().Str("dir", relPath).Msg("Pruning directory")
				return filepath.SkipDir
			}
			return nil
		}

		if set.Excluded(relPath) {
			ignored++
			logger.Debug().Str("file", relPath).Msg("Ignoring")
			return nil
		}

		if err := copyFile(path, filepath.Join(destRoot, rel)); err != nil {
			return err
		}
		copied++
		logger.Debug().Str("file", relPath).Msg("Copied")
		return nil
	})
	if walkErr != nil {
		return 0, 0, classifyCopyError(walkErr)
	}

	return copied, ignored, nil
}

// copyFile copies bytes, permission bits, and modification time.
func copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dest, info.ModTime(), info.ModTime())
}

// classifyCopyError separates disk/permission problems from internal bugs so
// callers can tell the two apart.
func classifyCopyError(err error) error {
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	if stderrors.As(err, &pathErr) || stderrors.As(err, &linkErr) {
		return errors.Wrap(err, errors.ErrPathAccess, "filesystem error while building plugin")
	}
	return errors.Wrap(err, errors.ErrBuildFailed, "unexpected error while building plugin")
}
