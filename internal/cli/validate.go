package cli

import (
	"os"

	"github.com/treeforge/treeforge/pkg/errors"
	"github.com/treeforge/treeforge/pkg/spec"
)

// validateRoot checks that the creation root is an existing directory.
func validateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Newf(errors.ErrValidation, "no valid creation root supplied: %s", root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrValidation, "creation root is not a directory: %s", root)
	}
	return nil
}

// validateSpecFile checks that the spec file exists and carries a supported
// extension.
func validateSpecFile(path string) error {
	if !spec.SupportedSpecFile(path) {
		return errors.Newf(errors.ErrValidation, "no valid spec file supplied: %s", path)
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return errors.Newf(errors.ErrValidation, "spec file does not exist: %s", path)
	}
	return nil
}

// validateVarsFile checks the optional variables file. An empty path is
// valid and means no substitution.
func validateVarsFile(path string) error {
	if path == "" {
		return nil
	}
	if !spec.SupportedVarsFile(path) {
		return errors.Newf(errors.ErrValidation, "no valid variables file supplied: %s", path)
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return errors.Newf(errors.ErrValidation, "variables file does not exist: %s", path)
	}
	return nil
}
