package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func noop([]string) error { return nil }

func TestBuilders_Shape(t *testing.T) {
	root := NewRoot("iu")
	files := NewBranch("files", root, "")
	NewLeaf("browse", files, "Pick a file", noop)
	NewLeaf("date", root, "", noop)
	NewBranch("net", root, "Network")

	require.Equal(t, KindBranch, root.Kind())
	require.Equal(t, "iu", root.Name())
	require.Equal(t, []string{"files", "date", "net"}, root.Keys())

	children := root.Children()
	require.Len(t, children, 3)
	require.Equal(t, "files", children[0].Name())
	require.Equal(t, "Network", children[2].Name())
	require.Equal(t, "net", children[2].Key())

	browse, ok := files.Child("browse")
	require.True(t, ok)
	require.Equal(t, KindLeaf, browse.Kind())
	require.Equal(t, "Pick a file", browse.Help())

	_, ok = root.Child("browse")
	require.False(t, ok)
}

func TestBuilders_Panics(t *testing.T) {
	tests := []struct {
		name  string
		build func()
	}{
		{"duplicate key", func() {
			root := NewRoot("m")
			NewLeaf("a", root, "", noop)
			NewBranch("a", root, "")
		}},
		{"child of leaf", func() {
			root := NewRoot("m")
			leaf := NewLeaf("a", root, "", noop)
			NewLeaf("b", leaf, "", noop)
		}},
		{"nil parent", func() { NewBranch("a", nil, "") }},
		{"nil action", func() { NewLeaf("a", NewRoot("m"), "", nil) }},
		{"empty key", func() { NewLeaf("", NewRoot("m"), "", noop) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, tt.build)
		})
	}
}

func TestKeysReturnsCopy(t *testing.T) {
	root := NewRoot("m")
	NewLeaf("a", root, "", noop)
	keys := root.Keys()
	keys[0] = "z"
	require.Equal(t, []string{"a"}, root.Keys())
}

func TestDescribe(t *testing.T) {
	root := NewRoot("m")
	tests := []struct {
		node *Node
		want string
	}{
		{NewLeaf("a", root, "Does a", noop), "Does a"},
		{NewLeaf("b", root, "", noop), "-"},
		{NewBranch("net", root, ""), "Enter Net menu"},
		{NewBranch("cfg", root, "config"), "Enter Config menu"},
		{NewBranch("x", root, "Étoile"), "Enter Étoile menu"},
	}

	for _, tt := range tests {
		t.Run(tt.node.Key(), func(t *testing.T) {
			require.Equal(t, tt.want, Describe(tt.node))
		})
	}
}

func TestFindSimilarCommands(t *testing.T) {
	root := NewRoot("iu")
	for _, key := range []string{"files", "net", "config", "clear", "date"} {
		NewLeaf(key, root, "", noop)
	}

	tests := []struct {
		name  string
		input string
		max   int
		want  []string
	}{
		{"typo", "confg", 3, []string{"config"}},
		{"transposition", "fiels", 3, []string{"files"}},
		{"prefix", "c", 3, []string{"clear", "config"}},
		{"capped and ranked", "e", 3, []string{"net", "date", "clear"}},
		{"nothing close", "xyzzy", 3, []string{}},
		{"limit", "c", 1, []string{"clear"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindSimilarCommands(tt.input, root, tt.max))
		})
	}

	require.Nil(t, FindSimilarCommands("x", nil, 3))
	require.Nil(t, FindSimilarCommands("", root, 3))
}
