// Package pydeps vendors a plugin's third-party Python dependencies into the
// build output and strips installer clutter afterwards. Both steps are
// exposed as plain functions so the copy engine can be tested without any
// subprocess involvement.
package pydeps

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/f0rgenet/flowpack/pkg/errors"
	"github.com/f0rgenet/flowpack/pkg/logging"
)

// Installer runs pip to vendor requirements into the build's lib directory.
type Installer struct {
	// Pip is the pip executable to invoke.
	Pip string

	// RequirementsFile is the requirements manifest, relative to the source root.
	RequirementsFile string

	// LibDir is the vendoring directory name inside the build output.
	LibDir string
}

// Install vendors the plugin's dependencies into {buildPath}/{LibDir}.
// A missing requirements file skips the step entirely. The lib directory is
// recreated fresh on every run. pip is a blocking call; on failure its stderr
// is attached to the returned error so the diagnostic reaches the user.
func (i *Installer) Install(sourceRoot, buildPath string) error {
	logger := logging.GetLogger("pydeps")

	requirementsPath := filepath.Join(sourceRoot, i.RequirementsFile)
	if _, err := os.Stat(requirementsPath); err != nil {
		logger.Info().Str("path", requirementsPath).Msg("No requirements file, skipping dependency install")
		return nil
	}

	libPath := filepath.Join(buildPath, i.LibDir)
	if _, err := os.Stat(libPath); err == nil {
		logger.Info().Str("path", libPath).Msg("Clearing existing lib directory")
		if err := os.RemoveAll(libPath); err != nil {
			return errors.Wrap(err, errors.ErrPathAccess, "failed to clear lib directory")
		}
	}
	if err := os.MkdirAll(libPath, 0755); err != nil {
		return errors.Wrap(err, errors.ErrPathAccess, "failed to create lib directory")
	}

	logger.Info().Str("requirements", requirementsPath).Str("target", libPath).Msg("Installing dependencies")

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(i.Pip, "install", "-r", requirementsPath, "-t", libPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, errors.ErrInstallFailed, "pip install failed").
			WithDetail("stderr", stderr.String())
	}

	logger.Info().Str("target", libPath).Msg("Dependencies installed")
	logger.Debug().Str("output", stdout.String()).Msg("pip output")
	return nil
}
