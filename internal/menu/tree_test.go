package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeLookup(t *testing.T) {
	tree := MustBuild(DefaultDeclaration("Notch"))

	node, ok := tree.Lookup(CommandDoublePane)
	require.True(t, ok)
	assert.Equal(t, "Two Panes", node.Label)
	assert.Equal(t, Accelerator("CmdOrCtrl+2"), node.Accelerator)

	assert.True(t, tree.Contains(CommandDocumentation))
	assert.False(t, tree.Contains("quit"))
	assert.False(t, tree.Contains(""))
}

func TestTreeWalkVisitsInOrder(t *testing.T) {
	tree := MustBuild(DefaultDeclaration("Notch"))

	var view []string
	tree.Walk(func(path []string, n Node) {
		if strings.Join(path, "/") != "View" {
			return
		}
		if n.Kind == KindSeparator {
			view = append(view, "-")
			return
		}
		view = append(view, n.DisplayLabel())
	})

	assert.Equal(t, []string{
		"Toggle Sidebar", "-",
		"Single Pane", "Two Panes", "Three Panes", "-",
		"Editor Only", "Preview Only", "Side by Side", "-",
		"Toggle Full Screen",
	}, view)
}

func TestPredefinedEntriesCarryNoCommand(t *testing.T) {
	tree := MustBuild(DefaultDeclaration("Notch"))

	tree.Walk(func(_ []string, n Node) {
		switch n.Kind {
		case KindLeaf:
			assert.NotEmpty(t, n.Command)
		default:
			assert.Empty(t, n.Command, "%s %q", n.Kind, n.DisplayLabel())
		}
	})
}

func TestDefaultDeclarationUsesAppName(t *testing.T) {
	tree := MustBuild(DefaultDeclaration("Scratch"))
	app := tree.Menus()[0]
	assert.Equal(t, "Scratch", app.Label)
	assert.Equal(t, "About Scratch", app.Children[0].Label)

	assert.Equal(t, "Notch", MustBuild(DefaultDeclaration("")).Menus()[0].Label)
}
