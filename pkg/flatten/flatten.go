// Package flatten turns the nested spec tree into the flat directory map
// the materializers consume.
package flatten

import (
	"os"

	"github.com/treeforge/treeforge/pkg/errors"
	"github.com/treeforge/treeforge/pkg/logging"
	"github.com/treeforge/treeforge/pkg/types"
)

// Flatten walks the spec tree and returns the directory map: every key is
// the separator-joined chain of mapping keys from root to leaf, its value
// the file entries belonging to that directory (nil for a bare directory).
//
// Duplicate paths are handled asymmetrically on purpose, mirroring how a
// plain mapping accumulates entries: a duplicate mapping key overwrites the
// earlier one (last write wins), while duplicates produced by expanding
// mappings nested inside lists merge additively.
func Flatten(root types.SpecNode) (*types.DirMap, error) {
	if root.Kind != types.KindDir {
		return nil, errors.Newf(errors.ErrInvalidSpec, "spec root must be a mapping, got %s", root.Kind)
	}

	dm := types.NewDirMap()
	if err := walk(dm, root, ""); err != nil {
		return nil, err
	}
	return dm, nil
}

func walk(dm *types.DirMap, node types.SpecNode, parent string) error {
	logger := logging.GetLogger("flatten")

	for _, child := range node.Children {
		joined := join(parent, child.Name)
		v := child.Node
		logger.Debug().Str("path", joined).Stringer("kind", v.Kind).Msg("Processing spec entry")

		switch v.Kind {
		case types.KindDir:
			if err := walk(dm, v, joined); err != nil {
				return err
			}

		case types.KindList:
			files := []string{}
			for _, item := range v.Items {
				switch item.Kind {
				case types.KindFile:
					files = append(files, item.Value)
				case types.KindDir:
					// Nested mappings inside a list expand as subdirectories
					// of the same joined key and merge into the accumulator.
					sub := types.NewDirMap()
					if err := walk(sub, item, joined); err != nil {
						return err
					}
					for _, k := range sub.Keys() {
						subFiles, _ := sub.Get(k)
						dm.Merge(k, subFiles)
					}
				default:
					return errors.Newf(errors.ErrInvalidSpec,
						"list under key %q may only hold strings and mappings, got %s",
						joined, item.Kind)
				}
			}
			// The joined key itself always gets an entry with the collected
			// strings, even when the list holds none. Assignment keeps
			// mapping semantics: a duplicate key overwrites.
			dm.Set(joined, files)

		case types.KindFile:
			dm.Set(joined, []string{v.Value})

		case types.KindEmpty:
			dm.Set(joined, nil)

		default:
			return errors.Newf(errors.ErrInvalidSpec,
				"key %q has an unsupported value kind %s", joined, v.Kind)
		}
	}
	return nil
}

// join concatenates path segments with the platform separator, without
// cleaning. Root-level keys carry no parent prefix.
func join(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + string(os.PathSeparator) + key
}
