package treemap

// Kind discriminates the two node variants.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

// Node is one element of the tree: either a directory owning an ordered
// list of children, or a file carrying a payload of type V. A node is
// exactly one of the two; directories never carry a value and files never
// have children.
type Node[V any] struct {
	name     string
	kind     Kind
	children []*Node[V]
	value    V
}

// NewDirectory returns an empty directory node.
func NewDirectory[V any](name string) *Node[V] {
	return &Node[V]{name: name, kind: KindDirectory}
}

// NewFile returns a file node holding value.
func NewFile[V any](name string, value V) *Node[V] {
	return &Node[V]{name: name, kind: KindFile, value: value}
}

func (n *Node[V]) Name() string {
	return n.name
}

func (n *Node[V]) Kind() Kind {
	return n.kind
}

func (n *Node[V]) IsDir() bool {
	return n.kind == KindDirectory
}

// Child looks up a direct child by exact name. It reports false on files
// and on misses. The scan is linear; children are not indexed.
func (n *Node[V]) Child(name string) (*Node[V], bool) {
	for _, child := range n.children {
		if child.name == name {
			return child, true
		}
	}
	return nil, false
}

// Children returns the ordered child list. Files have none.
func (n *Node[V]) Children() []*Node[V] {
	return n.children
}

// Value returns the payload of a file node. It reports false on
// directories.
func (n *Node[V]) Value() (V, bool) {
	if n.kind != KindFile {
		var zero V
		return zero, false
	}
	return n.value, true
}

// MakeDirectory appends a new empty directory child and returns it.
// Directories cannot be created under a file.
func (n *Node[V]) MakeDirectory(name string) (*Node[V], error) {
	if n.kind != KindDirectory {
		return nil, ErrNotDirectory
	}
	child := NewDirectory[V](name)
	n.children = append(n.children, child)
	return child, nil
}

// AddFile appends a new file child holding value and returns it.
func (n *Node[V]) AddFile(name string, value V) (*Node[V], error) {
	if n.kind != KindDirectory {
		return nil, ErrNotDirectory
	}
	child := NewFile(name, value)
	n.children = append(n.children, child)
	return child, nil
}

// removeChildren drops every direct child named name and returns how many
// were dropped.
func (n *Node[V]) removeChildren(name string) int {
	kept := n.children[:0]
	removed := 0
	for _, child := range n.children {
		if child.name == name {
			removed++
			continue
		}
		kept = append(kept, child)
	}
	n.children = kept
	return removed
}
