// Package casefile loads case maps from configuration files. The decoder is
// selected by file extension: TOML, YAML, or JSON. Values must be strings or
// arrays in the two case-definition forms the dispatcher accepts.
package casefile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/switchcase/pkg/errors"
)

// Load reads a case map from the file at path
func Load(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCaseFileLoad, "cannot read case file %s", path)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes case map data in the format indicated by ext
func Parse(data []byte, ext string) (map[string]interface{}, error) {
	var cases map[string]interface{}

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &cases); err != nil {
			return nil, errors.Wrap(err, errors.ErrCaseFileParse, "cannot parse TOML case file")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cases); err != nil {
			return nil, errors.Wrap(err, errors.ErrCaseFileParse, "cannot parse YAML case file")
		}
	case ".json":
		if err := json.Unmarshal(data, &cases); err != nil {
			return nil, errors.Wrap(err, errors.ErrCaseFileParse, "cannot parse JSON case file")
		}
	default:
		return nil, errors.Newf(errors.ErrCaseFileLoad, "unsupported case file extension %q", ext)
	}

	return cases, nil
}
