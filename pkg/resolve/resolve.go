// Package resolve performs placeholder substitution on flattened directory
// maps.
//
// The grammar is the classic shell-ish template one: $name, ${name}, and $$
// as the literal-dollar escape. Substitution is safe/partial: a placeholder
// with no mapped value stays verbatim, as do malformed dollar sequences.
// Strict resolution would make re-runnable scaffolds brittle, so there is
// deliberately no error path here.
package resolve

import (
	"regexp"

	"github.com/treeforge/treeforge/pkg/logging"
	"github.com/treeforge/treeforge/pkg/types"
)

// placeholder matches $$, ${name} and $name. Names follow identifier rules.
var placeholder = regexp.MustCompile(`\$(?:(\$)|\{([A-Za-z_][A-Za-z0-9_]*)\}|([A-Za-z_][A-Za-z0-9_]*))`)

// Expand substitutes recognized placeholders in s using vars. Unrecognized
// placeholders are left untouched. Replacement is a single pass: values are
// never re-expanded.
func Expand(s string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(s, func(m string) string {
		if m == "$$" {
			return "$"
		}
		name := m[1:]
		if name[0] == '{' {
			name = name[1 : len(name)-1]
		}
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}

// Resolve returns a new directory map with every path key and every file
// entry expanded against vars. The input map is not mutated. An empty vars
// mapping yields an equal copy.
func Resolve(dm *types.DirMap, vars map[string]string) *types.DirMap {
	logger := logging.GetLogger("resolve")
	logger.Debug().Int("variables", len(vars)).Msg("Resolving path templates")

	out := types.NewDirMap()
	for _, path := range dm.Keys() {
		files, _ := dm.Get(path)
		newPath := Expand(path, vars)

		if files == nil {
			// Preserve the bare-directory marker. Merge keeps an existing
			// file list if two keys resolve to the same path.
			out.Merge(newPath, nil)
			continue
		}

		newFiles := make([]string, len(files))
		for i, f := range files {
			newFiles[i] = Expand(f, vars)
		}
		out.Merge(newPath, newFiles)
	}
	return out
}
