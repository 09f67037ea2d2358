package types

// NodeKind discriminates the value shapes a spec mapping may hold.
type NodeKind int

const (
	// KindDir is a nested mapping describing a subdirectory.
	KindDir NodeKind = iota
	// KindList is a list of file entries and/or nested mappings.
	KindList
	// KindFile is a single file entry string.
	KindFile
	// KindEmpty is a null value, marking a directory with no files.
	KindEmpty
)

func (k NodeKind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindList:
		return "list"
	case KindFile:
		return "file"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// SpecNode is one level of the nested folder/file description. Exactly one
// of the payload fields is meaningful, selected by Kind:
//
//	KindDir   → Children (document order is preserved)
//	KindList  → Items
//	KindFile  → Value
//	KindEmpty → nothing
type SpecNode struct {
	Kind     NodeKind
	Children []DirChild
	Items    []SpecNode
	Value    string
}

// DirChild is a single named entry inside a KindDir node.
type DirChild struct {
	Name string
	Node SpecNode
}
