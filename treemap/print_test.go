package treemap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.InsertWithParents("home/arthur/answer.txt", 42))
	require.NoError(t, tree.Insert("readme.md", 7))

	var buf bytes.Buffer
	tree.Fprint(&buf)

	want := "root\n" +
		"  home\n" +
		"    arthur\n" +
		"      answer.txt: 42\n" +
		"  readme.md: 7\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintSubtree(t *testing.T) {
	tree := New[int]()
	require.NoError(t, tree.InsertWithParents("home/arthur/answer.txt", 42))

	sub, err := tree.GetNode("home/arthur")
	require.NoError(t, err)

	var buf bytes.Buffer
	Print(&buf, sub)
	assert.Equal(t, "arthur\n  answer.txt: 42\n", buf.String())
}
