// Package treemap provides a generic in-memory tree shaped like a
// filesystem: directories contain named children and files carry a payload
// value. Nodes are addressed by /-delimited paths and aggregated with
// depth-first folds. The structure is single-owner and not safe for
// concurrent mutation; embedding code must serialize access itself.
package treemap

// TreeMap owns a tree of nodes rooted at a directory named "root".
type TreeMap[V any] struct {
	root *Node[V]
}

// New returns an empty tree: a root directory with no children.
func New[V any]() *TreeMap[V] {
	return &TreeMap[V]{root: NewDirectory[V]("root")}
}

// Root returns the root directory, the entry point for Reduce and friends.
func (t *TreeMap[V]) Root() *Node[V] {
	return t.root
}

// GetNode resolves a path to a node. It returns ErrNotFound when a segment
// does not exist and ErrNotDirectory when a non-terminal segment resolves
// to a file.
func (t *TreeMap[V]) GetNode(path string) (*Node[V], error) {
	current := t.root
	for _, part := range splitPath(path) {
		if !current.IsDir() {
			return nil, ErrNotDirectory
		}
		child, ok := current.Child(part)
		if !ok {
			return nil, ErrNotFound
		}
		current = child
	}
	return current, nil
}

// GetSize resolves a path to a file and returns its value. Directories
// yield ErrNotFile; lookup errors propagate from GetNode.
func (t *TreeMap[V]) GetSize(path string) (V, error) {
	var zero V
	node, err := t.GetNode(path)
	if err != nil {
		return zero, err
	}
	value, ok := node.Value()
	if !ok {
		return zero, ErrNotFile
	}
	return value, nil
}

// GetChildren returns the ordered children of the directory at path.
func (t *TreeMap[V]) GetChildren(path string) ([]*Node[V], error) {
	node, err := t.GetNode(path)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, ErrNotDirectory
	}
	return node.Children(), nil
}

// Insert creates a file at path. Every intermediate segment must already
// exist as a directory (ErrNotFound otherwise). A terminal directory that
// already has a child named like the final segment yields ErrExists,
// whether that child is a file or a directory.
func (t *TreeMap[V]) Insert(path string, value V) error {
	return t.insert(path, value, false)
}

// InsertWithParents creates a file at path, creating missing intermediate
// directories on the way down. It never fails due to an absent parent.
func (t *TreeMap[V]) InsertWithParents(path string, value V) error {
	return t.insert(path, value, true)
}

func (t *TreeMap[V]) insert(path string, value V, parents bool) error {
	dirpath, stem := splitStem(path)
	dir, err := t.descend(dirpath, parents)
	if err != nil {
		return err
	}
	if _, ok := dir.Child(stem); ok {
		return ErrExists
	}
	_, err = dir.AddFile(stem, value)
	return err
}

// MakeDirectory finds or creates every segment of path as a directory,
// the final segment included. Repeating the call on an existing path is a
// no-op walk over the already-present nodes.
func (t *TreeMap[V]) MakeDirectory(path string) error {
	_, err := t.descend(splitPath(path), true)
	return err
}

// Remove drops, from the terminal directory, every child named like the
// final path segment. Removing a name with no matches is a no-op.
func (t *TreeMap[V]) Remove(path string) error {
	dirpath, stem := splitStem(path)
	dir, err := t.descend(dirpath, false)
	if err != nil {
		return err
	}
	dir.removeChildren(stem)
	return nil
}

// Any reports whether some file satisfies pred. Every file is visited
// exactly once regardless of earlier matches; pred must be pure.
func (t *TreeMap[V]) Any(pred func(name string, value V) bool) bool {
	return Reduce(t.root, false, func(acc bool, name string, value V) bool {
		ok := pred(name, value)
		return acc || ok
	})
}

// descend walks dirpath and returns the terminal directory, creating
// missing segments when create is set. A file anywhere on the walk,
// terminal position included, yields ErrNotDirectory.
func (t *TreeMap[V]) descend(dirpath []string, create bool) (*Node[V], error) {
	current := t.root
	for _, part := range dirpath {
		if !current.IsDir() {
			return nil, ErrNotDirectory
		}
		child, ok := current.Child(part)
		if !ok {
			if !create {
				return nil, ErrNotFound
			}
			made, err := current.MakeDirectory(part)
			if err != nil {
				return nil, err
			}
			child = made
		}
		current = child
	}
	if !current.IsDir() {
		return nil, ErrNotDirectory
	}
	return current, nil
}
