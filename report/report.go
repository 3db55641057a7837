// Package report builds du-style usage reports from a size tree: one row
// per directory with its recursive byte total and file count.
package report

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/ponyo877/dush/treemap"
)

// Entry is one directory row. Path is the tree-map path of the directory,
// with "/" standing in for the root.
type Entry struct {
	Path  string
	Total int64
	Files int
}

// Report is one run: a ULID identifying it, the time it was built and the
// directory rows in pre-order.
type Report struct {
	ID        string
	CreatedAt time.Time
	Entries   []Entry
}

// Build walks every directory of the tree and totals its subtree.
func Build(t *treemap.TreeMap[int64]) Report {
	r := Report{
		ID:        ulid.Make().String(),
		CreatedAt: time.Now(),
	}
	collect(t.Root(), "", &r.Entries)
	return r
}

func collect(n *treemap.Node[int64], path string, entries *[]Entry) {
	label := path
	if label == "" {
		label = "/"
	}
	*entries = append(*entries, Entry{
		Path:  label,
		Total: treemap.SumValues(n),
		Files: countFiles(n),
	})
	for _, child := range n.Children() {
		if !child.IsDir() {
			continue
		}
		childPath := child.Name()
		if path != "" {
			childPath = path + "/" + child.Name()
		}
		collect(child, childPath, entries)
	}
}

func countFiles(n *treemap.Node[int64]) int {
	return treemap.Reduce(n, 0, func(acc int, _ string, _ int64) int {
		return acc + 1
	})
}
