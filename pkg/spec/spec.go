// Package spec loads the declarative folder/file description and the
// optional variables document.
//
// Spec documents are JSON or YAML. Both are decoded through yaml.v3 (JSON
// is a YAML subset) using the node API so that mapping key order survives
// decoding; the flattener depends on document order for deterministic
// output.
package spec

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/treeforge/treeforge/pkg/errors"
	"github.com/treeforge/treeforge/pkg/types"
)

// SpecExtensions lists the file extensions accepted for spec documents.
var SpecExtensions = []string{".json", ".yaml", ".yml"}

// SupportedSpecFile reports whether path carries a spec document extension.
func SupportedSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SpecExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load reads and decodes the spec document at path into a SpecNode tree.
// The document root must be a mapping.
func Load(path string, fsys types.FS) (types.SpecNode, error) {
	if !SupportedSpecFile(path) {
		return types.SpecNode{}, errors.Newf(errors.ErrSpecLoad,
			"unsupported spec format %q", filepath.Ext(path)).WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return types.SpecNode{}, errors.Wrapf(err, errors.ErrSpecLoad,
			"cannot read spec file %s", path)
	}

	return Parse(data)
}

// Parse decodes raw spec document bytes into a SpecNode tree.
func Parse(data []byte) (types.SpecNode, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.SpecNode{}, errors.Wrap(err, errors.ErrSpecLoad, "cannot parse spec document")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return types.SpecNode{}, errors.New(errors.ErrSpecLoad, "spec document is empty")
		}
		root = root.Content[0]
	}

	node, err := convert(root, "")
	if err != nil {
		return types.SpecNode{}, err
	}
	if node.Kind != types.KindDir {
		return types.SpecNode{}, errors.Newf(errors.ErrInvalidSpec,
			"spec root must be a mapping, got %s", node.Kind)
	}
	return node, nil
}

// convert turns a yaml node into the tagged SpecNode variant. keyPath names
// the enclosing key chain for error messages.
func convert(n *yaml.Node, keyPath string) (types.SpecNode, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return convert(n.Alias, keyPath)

	case yaml.MappingNode:
		out := types.SpecNode{Kind: types.KindDir}
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
				return types.SpecNode{}, errors.Newf(errors.ErrInvalidSpec,
					"spec key under %q must be a string, got %q", orRoot(keyPath), keyNode.Value)
			}
			childPath := keyNode.Value
			if keyPath != "" {
				childPath = keyPath + "/" + keyNode.Value
			}
			child, err := convert(valNode, childPath)
			if err != nil {
				return types.SpecNode{}, err
			}
			out.Children = append(out.Children, types.DirChild{Name: keyNode.Value, Node: child})
		}
		return out, nil

	case yaml.SequenceNode:
		out := types.SpecNode{Kind: types.KindList}
		for _, item := range n.Content {
			conv, err := convert(item, keyPath)
			if err != nil {
				return types.SpecNode{}, err
			}
			switch conv.Kind {
			case types.KindFile, types.KindDir:
				out.Items = append(out.Items, conv)
			default:
				return types.SpecNode{}, errors.Newf(errors.ErrInvalidSpec,
					"list under key %q may only hold strings and mappings, got %s (%q)",
					orRoot(keyPath), conv.Kind, item.Value)
			}
		}
		return out, nil

	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return types.SpecNode{Kind: types.KindEmpty}, nil
		case "!!str":
			return types.SpecNode{Kind: types.KindFile, Value: n.Value}, nil
		default:
			return types.SpecNode{}, errors.Newf(errors.ErrInvalidSpec,
				"key %q has unsupported value %q (%s); expected mapping, list, string or null",
				orRoot(keyPath), n.Value, strings.TrimPrefix(n.Tag, "!!"))
		}

	default:
		return types.SpecNode{}, errors.Newf(errors.ErrInvalidSpec,
			"key %q has an unsupported node shape", orRoot(keyPath))
	}
}

func orRoot(keyPath string) string {
	if keyPath == "" {
		return "(root)"
	}
	return keyPath
}
