package manifest

import (
	_ "embed"
	"os"

	"github.com/arthur-debert/pipstrap/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

//go:embed embedded/default.toml
var defaultManifest []byte

// Default returns the embedded default manifest.
func Default() (*Manifest, error) {
	return parse(defaultManifest)
}

// Load reads and parses a manifest file. Fields absent from the file
// fall back to the embedded defaults, so a user manifest only has to
// declare what it changes.
func Load(path string) (*Manifest, error) {
	logger := log.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to read manifest %s", path)
	}

	m, err := Default()
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to parse manifest %s", path)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("platforms", m.Platforms()).
		Msg("Manifest loaded")
	return m, nil
}

// Marshal renders a manifest back to TOML.
func Marshal(m *Manifest) ([]byte, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal manifest")
	}
	return data, nil
}

// DefaultTOML returns the embedded default manifest verbatim, comments
// included.
func DefaultTOML() []byte {
	out := make([]byte, len(defaultManifest))
	copy(out, defaultManifest)
	return out
}

func parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse embedded manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
