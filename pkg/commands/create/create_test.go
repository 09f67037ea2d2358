package create_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treeforge/treeforge/pkg/commands/create"
	"github.com/treeforge/treeforge/pkg/config"
	"github.com/treeforge/treeforge/pkg/errors"
	"github.com/treeforge/treeforge/pkg/filesystem"
	"github.com/treeforge/treeforge/pkg/types"
)

// fixture builds an in-memory filesystem holding the given files and an
// existing /proj creation root.
func fixture(t *testing.T, files map[string]string) (afero.Fs, types.FS) {
	t.Helper()
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/proj", 0755))
	for path, content := range files {
		require.NoError(t, afero.WriteFile(base, path, []byte(content), 0644))
	}
	return base, filesystem.NewAferoFS(base)
}

func run(t *testing.T, fsys types.FS, opts create.Options) *types.CreateResult {
	t.Helper()
	opts.FS = fsys
	opts.Config = config.Default()
	result, err := create.Run(opts)
	require.NoError(t, err)
	return result
}

func TestCreateScaffoldsTreeWithCopy(t *testing.T) {
	_, fsys := fixture(t, map[string]string{
		"/specs/project.json":        `{"src": {"models": ["base.py", "./templates/model.tpl"]}}`,
		"/specs/templates/model.tpl": "class ${name}: pass",
	})

	result := run(t, fsys, create.Options{
		Root:     "/proj",
		SpecFile: "/specs/project.json",
	})

	assert.Equal(t, []string{filepath.Join("/proj", "src", "models")}, result.DirsCreated)
	assert.ElementsMatch(t, []string{
		filepath.Join("/proj", "src", "models", "base.py"),
		filepath.Join("/proj", "src", "models", "model.tpl"),
	}, result.FilesCreated)

	data, err := fsys.ReadFile(filepath.Join("/proj", "src", "models", "model.tpl"))
	require.NoError(t, err)
	assert.Equal(t, "class ${name}: pass", string(data),
		"file contents are copied verbatim, never templated")
}

func TestCreateMissingCopySourceOnlySkips(t *testing.T) {
	_, fsys := fixture(t, map[string]string{
		"/specs/project.json": `{"src": {"models": ["base.py", "./templates/model.tpl"]}}`,
	})

	result := run(t, fsys, create.Options{
		Root:     "/proj",
		SpecFile: "/specs/project.json",
	})

	assert.Equal(t, []string{filepath.Join("/proj", "src", "models", "base.py")},
		result.FilesCreated)
	assert.Equal(t, 1, result.FilesSkipped)
}

func TestCreateResolvesPlaceholders(t *testing.T) {
	_, fsys := fixture(t, map[string]string{
		"/specs/project.json": `{"pkg_${name}": {"__init__.py": null}}`,
		"/specs/vars.json":    `{"name": "core"}`,
	})

	result := run(t, fsys, create.Options{
		Root:     "/proj",
		SpecFile: "/specs/project.json",
		VarsFile: "/specs/vars.json",
	})

	// The null value makes __init__.py itself a directory key with no files.
	assert.Equal(t, []string{filepath.Join("/proj", "pkg_core", "__init__.py")},
		result.DirsCreated)
	assert.Empty(t, result.FilesCreated)
}

func TestCreateWithoutVarsLeavesPlaceholders(t *testing.T) {
	_, fsys := fixture(t, map[string]string{
		"/specs/project.json": `{"pkg_${name}": null}`,
	})

	result := run(t, fsys, create.Options{
		Root:     "/proj",
		SpecFile: "/specs/project.json",
	})

	assert.Equal(t, []string{filepath.Join("/proj", "pkg_${name}")}, result.DirsCreated)
}

func TestCreateDryRunWritesNothing(t *testing.T) {
	base, fsys := fixture(t, map[string]string{
		"/specs/project.json": `{"src": {"models": ["base.py"]}}`,
	})

	result := run(t, fsys, create.Options{
		Root:     "/proj",
		SpecFile: "/specs/project.json",
		DryRun:   true,
	})

	assert.True(t, result.DryRun)
	assert.Empty(t, result.DirsCreated)
	assert.Empty(t, result.FilesCreated)
	require.NotNil(t, result.Plan)
	_, ok := result.Plan.Get(filepath.Join("src", "models"))
	assert.True(t, ok)

	exists, err := afero.DirExists(base, "/proj/src")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateRerunFillsGapsOnly(t *testing.T) {
	_, fsys := fixture(t, map[string]string{
		"/specs/project.json": `{"src": ["main.py"], "docs": null}`,
	})

	opts := create.Options{Root: "/proj", SpecFile: "/specs/project.json"}

	first := run(t, fsys, opts)
	require.NotEmpty(t, first.DirsCreated)
	require.NotEmpty(t, first.FilesCreated)

	second := run(t, fsys, opts)
	assert.Empty(t, second.DirsCreated, "a complete first run leaves nothing to create")
	assert.Empty(t, second.FilesCreated)
	assert.Equal(t, len(first.DirsCreated), second.DirsSkipped)
	assert.Equal(t, len(first.FilesCreated), second.FilesSkipped)
}

func TestCreateInvalidSpecIsFatal(t *testing.T) {
	_, fsys := fixture(t, map[string]string{
		"/specs/project.json": `{"src": {"count": 3}}`,
	})

	_, err := create.Run(create.Options{
		Root:     "/proj",
		SpecFile: "/specs/project.json",
		FS:       fsys,
		Config:   config.Default(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSpec))
}

func TestCreateMissingSpecIsFatal(t *testing.T) {
	_, fsys := fixture(t, nil)

	_, err := create.Run(create.Options{
		Root:     "/proj",
		SpecFile: "/specs/project.json",
		FS:       fsys,
		Config:   config.Default(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSpecLoad))
}
