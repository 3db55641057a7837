package treemap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertLookupRoundTrip(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.InsertWithParents("home/users/arthur/answer.txt", 42))

	node, err := tree.GetNode("home/users/arthur/answer.txt")
	require.NoError(t, err)
	assert.Equal(t, "answer.txt", node.Name())
	value, ok := node.Value()
	require.True(t, ok)
	assert.Equal(t, 42, value)

	for _, dir := range []string{"home", "home/users", "home/users/arthur"} {
		node, err := tree.GetNode(dir)
		require.NoError(t, err, dir)
		assert.True(t, node.IsDir(), dir)
	}
}

func TestHomeDirectoryScenario(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.InsertWithParents("home/users/arthur/answer.txt", 42))
	require.NoError(t, tree.InsertWithParents("home/users/arthur/password.txt", 128))

	assert.Equal(t, 170, Sum(tree))

	children, err := tree.GetChildren("home/users/arthur")
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "answer.txt", children[0].Name())
	assert.Equal(t, "password.txt", children[1].Name())
	for _, child := range children {
		assert.False(t, child.IsDir())
	}

	assert.True(t, tree.Any(func(name string, _ int) bool {
		return strings.Contains(name, "passw")
	}))
	assert.True(t, tree.Any(func(_ string, value int) bool {
		return value == 42
	}))
	assert.False(t, tree.Any(func(name string, _ int) bool {
		return strings.Contains(name, "Ideas")
	}))
}

func TestSingleSegmentInsert(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.Insert("home", 42))

	assert.Equal(t, 42, Sum(tree))

	size, err := tree.GetSize("home")
	require.NoError(t, err)
	assert.Equal(t, 42, size)
}

func TestInsertRequiresExistingParents(t *testing.T) {
	tree := New[int]()
	assert.ErrorIs(t, tree.Insert("home/users/file.txt", 1), ErrNotFound)

	require.NoError(t, tree.MakeDirectory("home/users"))
	assert.NoError(t, tree.Insert("home/users/file.txt", 1))
}

func TestDuplicateInsertIsRejected(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.Insert("home", 1))
	assert.ErrorIs(t, tree.Insert("home", 2), ErrExists)
	assert.ErrorIs(t, tree.InsertWithParents("home", 2), ErrExists)

	require.NoError(t, tree.MakeDirectory("etc"))
	assert.ErrorIs(t, tree.Insert("etc", 3), ErrExists)

	size, err := tree.GetSize("home")
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestGetNodeAbsence(t *testing.T) {
	tree := New[int]()
	_, err := tree.GetNode("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, tree.InsertWithParents("home/file.txt", 1))
	_, err = tree.GetNode("home/other.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTraversalThroughFile(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.Insert("notes.txt", 5))

	_, err := tree.GetNode("notes.txt/deeper")
	assert.ErrorIs(t, err, ErrNotDirectory)

	assert.ErrorIs(t, tree.Insert("notes.txt/deeper", 1), ErrNotDirectory)
	assert.ErrorIs(t, tree.InsertWithParents("notes.txt/deeper", 1), ErrNotDirectory)
	assert.ErrorIs(t, tree.MakeDirectory("notes.txt/deeper"), ErrNotDirectory)
	assert.ErrorIs(t, tree.MakeDirectory("notes.txt"), ErrNotDirectory)
	assert.ErrorIs(t, tree.Remove("notes.txt/deeper"), ErrNotDirectory)

	_, err = tree.GetChildren("notes.txt")
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestGetSizeOnDirectory(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.MakeDirectory("home"))

	_, err := tree.GetSize("home")
	assert.ErrorIs(t, err, ErrNotFile)

	_, err = tree.GetSize("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemove(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.InsertWithParents("home/a.txt", 1))
	require.NoError(t, tree.InsertWithParents("home/b.txt", 2))

	countFiles := func() int {
		return Reduce(tree.Root(), 0, func(acc int, _ string, _ int) int {
			return acc + 1
		})
	}
	require.Equal(t, 2, countFiles())

	require.NoError(t, tree.Remove("home/a.txt"))
	_, err := tree.GetNode("home/a.txt")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, countFiles())

	// absent stem is a no-op
	require.NoError(t, tree.Remove("home/a.txt"))
	assert.Equal(t, 1, countFiles())

	// removing a directory drops its subtree
	require.NoError(t, tree.Remove("home"))
	assert.Equal(t, 0, countFiles())
}

func TestRemoveRequiresExistingDirpath(t *testing.T) {
	tree := New[int]()
	assert.ErrorIs(t, tree.Remove("no/such/path"), ErrNotFound)
}

func TestMakeDirectoryIsIdempotent(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.MakeDirectory("home/users/arthur"))
	require.NoError(t, tree.MakeDirectory("home/users/arthur"))

	children, err := tree.GetChildren("home/users")
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "arthur", children[0].Name())

	children, err = tree.GetChildren("home/users/arthur")
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestLiteralPathSegments(t *testing.T) {
	tree := New[int]()

	// a doubled separator names an empty-string directory
	require.NoError(t, tree.InsertWithParents("home//file.txt", 1))
	node, err := tree.GetNode("home//file.txt")
	require.NoError(t, err)
	assert.Equal(t, "file.txt", node.Name())

	empty, err := tree.GetNode("home/")
	require.NoError(t, err)
	assert.True(t, empty.IsDir())
	assert.Equal(t, "", empty.Name())

	_, err = tree.GetNode("home/file.txt")
	assert.ErrorIs(t, err, ErrNotFound)

	// "." and ".." are ordinary names, not navigation
	require.NoError(t, tree.InsertWithParents("../.", 9))
	size, err := tree.GetSize("../.")
	require.NoError(t, err)
	assert.Equal(t, 9, size)

	// the empty path names a single empty-string segment under root
	tree2 := New[int]()
	require.NoError(t, tree2.Insert("", 3))
	size, err = tree2.GetSize("")
	require.NoError(t, err)
	assert.Equal(t, 3, size)
}

func TestRootIsNotAPathSegment(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.Insert("home", 1))

	_, err := tree.GetNode("root")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = tree.GetNode("root/home")
	assert.ErrorIs(t, err, ErrNotFound)
}
