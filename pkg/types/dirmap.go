package types

// DirMap is the flattened directory map: each key is a fully qualified
// relative directory path and its value is the list of file entries to
// materialize inside it. A nil entry list marks a directory with no files.
//
// Keys iterate in first-appearance order so that runs are deterministic and
// parents written before children in the document materialize first.
type DirMap struct {
	keys    []string
	entries map[string][]string
}

// NewDirMap returns an empty DirMap.
func NewDirMap() *DirMap {
	return &DirMap{entries: make(map[string][]string)}
}

// Set assigns files to path with last-write-wins semantics, matching plain
// mapping key insertion. The key keeps its original position when it
// already exists.
func (m *DirMap) Set(path string, files []string) {
	if _, ok := m.entries[path]; !ok {
		m.keys = append(m.keys, path)
	}
	m.entries[path] = files
}

// Merge appends files to any existing entry for path instead of replacing
// it. This is the additive branch used for duplicate paths produced by
// list-of-mappings expansion.
func (m *DirMap) Merge(path string, files []string) {
	existing, ok := m.entries[path]
	if !ok {
		m.keys = append(m.keys, path)
		m.entries[path] = files
		return
	}
	if len(files) == 0 {
		return
	}
	m.entries[path] = append(existing, files...)
}

// Get returns the file entries for path and whether the path is present.
func (m *DirMap) Get(path string) ([]string, bool) {
	files, ok := m.entries[path]
	return files, ok
}

// Keys returns the directory paths in first-appearance order.
func (m *DirMap) Keys() []string {
	return m.keys
}

// Len returns the number of directory paths.
func (m *DirMap) Len() int {
	return len(m.keys)
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (m *DirMap) Clone() *DirMap {
	out := &DirMap{
		keys:    make([]string, len(m.keys)),
		entries: make(map[string][]string, len(m.entries)),
	}
	copy(out.keys, m.keys)
	for path, files := range m.entries {
		if files == nil {
			out.entries[path] = nil
			continue
		}
		cp := make([]string, len(files))
		copy(cp, files)
		out.entries[path] = cp
	}
	return out
}
