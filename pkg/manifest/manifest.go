// Package manifest reads and validates the plugin.json document that
// identifies a Flow Launcher plugin. The manifest supplies the identity used
// to name the build output directory; everything else is passed through
// untouched.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/f0rgenet/flowpack/pkg/errors"
	"github.com/f0rgenet/flowpack/pkg/logging"
)

// FileName is the plugin manifest file expected at the source root.
const FileName = "plugin.json"

// Manifest is the plugin identity document. Name and Version are required;
// the remaining fields are optional host-application metadata.
type Manifest struct {
	ID              string `koanf:"ID"`
	Name            string `koanf:"Name"`
	Version         string `koanf:"Version"`
	Description     string `koanf:"Description"`
	Author          string `koanf:"Author"`
	Language        string `koanf:"Language"`
	Website         string `koanf:"Website"`
	IcoPath         string `koanf:"IcoPath"`
	ExecuteFileName string `koanf:"ExecuteFileName"`
	ActionKeyword   string `koanf:"ActionKeyword"`
}

// Load reads plugin.json from sourceRoot and validates the required fields.
// All failures are configuration errors and abort before any copying.
func Load(sourceRoot string) (*Manifest, error) {
	logger := logging.GetLogger("manifest")

	path := filepath.Join(sourceRoot, FileName)
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestMissing, "%s not found in %s", FileName, sourceRoot)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to parse %s", FileName)
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to decode %s", FileName)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	logger.Info().Str("name", m.Name).Str("version", m.Version).Msg("Loaded plugin manifest")
	return &m, nil
}

func (m *Manifest) validate() error {
	var missing []string
	if m.Name == "" {
		missing = append(missing, "Name")
	}
	if m.Version == "" {
		missing = append(missing, "Version")
	}
	if len(missing) > 0 {
		return errors.Newf(errors.ErrManifestField, "%s is missing required fields: %v", FileName, missing)
	}
	return nil
}
