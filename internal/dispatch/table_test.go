package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/notch/internal/menu"
)

func TestDefaultTableCoversDefaultMenu(t *testing.T) {
	tree := menu.MustBuild(menu.DefaultDeclaration("Notch"))
	require.NoError(t, DefaultTable().Check(tree, Reserved...))
}

func TestCheckReportsGaps(t *testing.T) {
	tree := menu.MustBuild(menu.Declaration{
		menu.Submenu("File",
			menu.Item(menu.CommandNewNote, "New Note", ""),
			menu.Item("archive", "Archive", ""),
		),
	})

	err := DefaultTable().Check(tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `command "archive" has no signal`)
	assert.Contains(t, err.Error(), `signal for "toggle_sidebar" has no menu entry`)
}

func TestCheckRejectsReservedAndMapped(t *testing.T) {
	tree := menu.MustBuild(menu.DefaultDeclaration("Notch"))
	err := DefaultTable().Check(tree, append(Reserved, menu.CommandNewNote)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both reserved and mapped")
}

func TestLookup(t *testing.T) {
	table := DefaultTable()

	sig, ok := table.Lookup(menu.CommandSplitView)
	require.True(t, ok)
	assert.Equal(t, SetEditorViewMode(ViewSplit), sig)

	_, ok = table.Lookup(menu.CommandDocumentation)
	assert.False(t, ok)

	table["broken"] = nil
	_, ok = table.Lookup("broken")
	assert.False(t, ok)
}

func TestSignalString(t *testing.T) {
	assert.Equal(t, "toggleSidebar()", ToggleSidebar().String())
	assert.Equal(t, "setLayoutMode('triple')", SetLayoutMode(LayoutTriple).String())
}
