package spec

import (
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/treeforge/treeforge/pkg/errors"
	"github.com/treeforge/treeforge/pkg/types"
)

// VarsExtensions lists the file extensions accepted for variables documents.
var VarsExtensions = []string{".json", ".yaml", ".yml", ".toml"}

// SupportedVarsFile reports whether path carries a variables document
// extension.
func SupportedVarsFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range VarsExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadVariables reads a flat placeholder → replacement mapping. Values must
// be strings.
func LoadVariables(path string, fsys types.FS) (map[string]string, error) {
	if !SupportedVarsFile(path) {
		return nil, errors.Newf(errors.ErrVarsLoad,
			"unsupported variables format %q", filepath.Ext(path)).WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVarsLoad, "cannot read variables file %s", path)
	}

	vars := make(map[string]string)
	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		if err := toml.Unmarshal(data, &vars); err != nil {
			return nil, errors.Wrapf(err, errors.ErrVarsLoad, "cannot parse variables file %s", path)
		}
		return vars, nil
	}

	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, errors.Wrapf(err, errors.ErrVarsLoad, "cannot parse variables file %s", path)
	}
	return vars, nil
}
