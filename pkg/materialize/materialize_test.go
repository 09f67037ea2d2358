package materialize_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treeforge/treeforge/pkg/filesystem"
	"github.com/treeforge/treeforge/pkg/materialize"
	"github.com/treeforge/treeforge/pkg/types"
)

func memFS() (afero.Fs, types.FS) {
	base := afero.NewMemMapFs()
	return base, filesystem.NewAferoFS(base)
}

func TestDirsCreatesAllPaths(t *testing.T) {
	_, fsys := memFS()

	dm := types.NewDirMap()
	dm.Set(filepath.Join("src", "models"), []string{"base.py"})
	dm.Set("docs", nil)

	created, skipped := materialize.Dirs(fsys, dm, "/proj", 0755)

	assert.Equal(t, []string{
		filepath.Join("/proj", "src", "models"),
		filepath.Join("/proj", "docs"),
	}, created)
	assert.Zero(t, skipped)

	for _, dir := range created {
		info, err := fsys.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestDirsSkipsExisting(t *testing.T) {
	base, fsys := memFS()
	require.NoError(t, base.MkdirAll("/proj/docs", 0755))

	dm := types.NewDirMap()
	dm.Set("docs", nil)
	dm.Set("src", nil)

	created, skipped := materialize.Dirs(fsys, dm, "/proj", 0755)

	assert.Equal(t, []string{filepath.Join("/proj", "src")}, created,
		"pre-existing directories must not be reported as created")
	assert.Equal(t, 1, skipped)
}

func TestDirsNestedOutOfOrder(t *testing.T) {
	_, fsys := memFS()

	// The child appears before its parent; MkdirAll creates intermediates,
	// so the parent key is then a pre-existing path.
	dm := types.NewDirMap()
	dm.Set(filepath.Join("a", "b"), nil)
	dm.Set("a", nil)

	created, skipped := materialize.Dirs(fsys, dm, "/proj", 0755)

	assert.Equal(t, []string{filepath.Join("/proj", "a", "b")}, created)
	assert.Equal(t, 1, skipped)
}

func TestFilesCreatesEmptyFiles(t *testing.T) {
	base, fsys := memFS()
	require.NoError(t, base.MkdirAll("/proj/src", 0755))

	dm := types.NewDirMap()
	dm.Set("src", []string{"__init__.py", "main.py"})

	created, skipped := materialize.Files(fsys, dm, "/proj", "/specs", 0644)

	assert.Equal(t, []string{
		filepath.Join("/proj", "src", "__init__.py"),
		filepath.Join("/proj", "src", "main.py"),
	}, created)
	assert.Zero(t, skipped)

	data, err := fsys.ReadFile(filepath.Join("/proj", "src", "__init__.py"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFilesSkipsExistingNeverOverwrites(t *testing.T) {
	base, fsys := memFS()
	require.NoError(t, afero.WriteFile(base, "/proj/src/main.py", []byte("user code"), 0644))

	dm := types.NewDirMap()
	dm.Set("src", []string{"main.py"})

	created, skipped := materialize.Files(fsys, dm, "/proj", "/specs", 0644)

	assert.Empty(t, created)
	assert.Equal(t, 1, skipped)

	data, err := fsys.ReadFile("/proj/src/main.py")
	require.NoError(t, err)
	assert.Equal(t, "user code", string(data), "existing content must survive")
}

func TestFilesCopiesRelativeSource(t *testing.T) {
	base, fsys := memFS()
	modTime := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, afero.WriteFile(base, "/specs/templates/model.tpl", []byte("template body"), 0640))
	require.NoError(t, base.Chtimes("/specs/templates/model.tpl", modTime, modTime))

	dm := types.NewDirMap()
	dm.Set(filepath.Join("src", "models"), []string{"./templates/model.tpl"})

	created, skipped := materialize.Files(fsys, dm, "/proj", "/specs", 0644)

	dst := filepath.Join("/proj", "src", "models", "model.tpl")
	assert.Equal(t, []string{dst}, created)
	assert.Zero(t, skipped)

	data, err := fsys.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "template body", string(data))

	info, err := fsys.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, modTime, info.ModTime(), "source timestamps must be preserved")
}

func TestFilesCopiesAbsoluteSource(t *testing.T) {
	base, fsys := memFS()
	require.NoError(t, afero.WriteFile(base, "/shared/LICENSE", []byte("MIT"), 0644))

	dm := types.NewDirMap()
	dm.Set("docs", []string{"/shared/LICENSE"})

	created, _ := materialize.Files(fsys, dm, "/proj", "/specs", 0644)

	assert.Equal(t, []string{filepath.Join("/proj", "docs", "LICENSE")}, created)
}

func TestFilesSkipsMissingSource(t *testing.T) {
	base, fsys := memFS()
	require.NoError(t, base.MkdirAll("/proj/src", 0755))

	dm := types.NewDirMap()
	dm.Set("src", []string{"./templates/nope.tpl", "kept.py"})

	created, skipped := materialize.Files(fsys, dm, "/proj", "/specs", 0644)

	assert.Equal(t, []string{filepath.Join("/proj", "src", "kept.py")}, created,
		"materialization must continue after a missing source")
	assert.Equal(t, 1, skipped)

	_, err := fsys.Stat(filepath.Join("/proj", "src", "nope.tpl"))
	assert.Error(t, err, "no destination file may appear for a missing source")
}

func TestFilesIgnoresBareAndEmptyDirectories(t *testing.T) {
	_, fsys := memFS()

	dm := types.NewDirMap()
	dm.Set("docs", nil)
	dm.Set("assets", []string{})

	created, skipped := materialize.Files(fsys, dm, "/proj", "/specs", 0644)
	assert.Empty(t, created)
	assert.Zero(t, skipped)
}

func TestRerunIsSafeAndCreatesNothing(t *testing.T) {
	base, fsys := memFS()
	require.NoError(t, afero.WriteFile(base, "/specs/templates/model.tpl", []byte("tpl"), 0644))

	dm := types.NewDirMap()
	dm.Set(filepath.Join("src", "models"), []string{"base.py", "./templates/model.tpl"})
	dm.Set("docs", nil)

	dirs1, _ := materialize.Dirs(fsys, dm, "/proj", 0755)
	files1, _ := materialize.Files(fsys, dm, "/proj", "/specs", 0644)
	require.NotEmpty(t, dirs1)
	require.NotEmpty(t, files1)

	// Mutate one created file; a second run must not touch it.
	target := filepath.Join("/proj", "src", "models", "base.py")
	require.NoError(t, afero.WriteFile(base, target, []byte("edited"), 0644))

	dirs2, dirSkips := materialize.Dirs(fsys, dm, "/proj", 0755)
	files2, fileSkips := materialize.Files(fsys, dm, "/proj", "/specs", 0644)

	assert.Empty(t, dirs2, "second run must create no directories")
	assert.Empty(t, files2, "second run must create no files")
	assert.Equal(t, len(dirs1), dirSkips)
	assert.Equal(t, len(files1), fileSkips)

	data, err := fsys.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "edited", string(data))
}
