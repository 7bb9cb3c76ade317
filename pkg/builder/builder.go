// Package builder orchestrates one plugin build: manifest load, ignore-set
// assembly, filtered tree copy, dependency vendoring, and cleanup. The
// vendoring steps are injected functions so the copy engine can be exercised
// without running pip.
package builder

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/f0rgenet/flowpack/pkg/config"
	"github.com/f0rgenet/flowpack/pkg/ignore"
	"github.com/f0rgenet/flowpack/pkg/logging"
	"github.com/f0rgenet/flowpack/pkg/manifest"
	"github.com/f0rgenet/flowpack/pkg/paths"
	"github.com/f0rgenet/flowpack/pkg/pydeps"
)

// InstallFunc vendors dependencies into the build output. Fatal on error.
type InstallFunc func(sourceRoot, buildPath string) error

// CleanFunc strips installer clutter from the vendored lib directory.
// Best-effort, never fails the build.
type CleanFunc func(libDir string)

// Result summarizes a completed build.
type Result struct {
	Manifest     *manifest.Manifest
	BuildPath    string
	FilesCopied  int
	FilesIgnored int
}

// Builder packages one plugin source tree. Each build constructs its own
// ignore set and performs a single traversal; nothing is shared or cached
// across invocations.
type Builder struct {
	SourceRoot string
	Config     *config.Config

	// Install and Clean are the vendoring collaborators. New wires the pip
	// implementations; tests substitute their own.
	Install InstallFunc
	Clean   CleanFunc

	logger zerolog.Logger
}

// New creates a Builder with the pip-backed vendoring collaborators.
func New(sourceRoot string, cfg *config.Config) *Builder {
	installer := &pydeps.Installer{
		Pip:              cfg.PipCommand,
		RequirementsFile: cfg.RequirementsFile,
		LibDir:           cfg.LibDir,
	}
	return &Builder{
		SourceRoot: sourceRoot,
		Config:     cfg,
		Install:    installer.Install,
		Clean:      pydeps.Clean,
		logger:     logging.GetLogger("builder"),
	}
}

// Build runs the full packaging sequence and returns the populated build
// directory. Any fatal error leaves whatever was written in place; re-running
// the build is the recovery path, since every run deletes and recreates the
// destination.
func (b *Builder) Build() (*Result, error) {
	m, err := manifest.Load(b.SourceRoot)
	if err != nil {
		return nil, err
	}

	pluginsDir := paths.PluginsDir(b.Config.PluginsDir)
	buildPath := paths.BuildDir(pluginsDir, m.Name, m.Version)

	b.logger.Info().
		Str("plugin", m.Name).
		Str("version", m.Version).
		Str("dest", buildPath).
		Msg("Starting plugin build")

	set := ignore.NewSet()
	set.LoadFile(filepath.Join(b.SourceRoot, b.Config.IgnoreFile))

	copied, ignoredCount, err := CopyTree(b.SourceRoot, buildPath, set)
	if err != nil {
		return nil, err
	}

	b.logger.Info().
		Int("copied", copied).
		Int("ignored", ignoredCount).
		Str("dest", buildPath).
		Msg("Plugin files copied")

	if err := b.Install(b.SourceRoot, buildPath); err != nil {
		return nil, err
	}
	b.Clean(filepath.Join(buildPath, b.Config.LibDir))

	b.logger.Info().Str("dest", buildPath).Msg("Plugin build finished")

	return &Result{
		Manifest:     m,
		BuildPath:    buildPath,
		FilesCopied:  copied,
		FilesIgnored: ignoredCount,
	}, nil
}
