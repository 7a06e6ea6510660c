package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultDeclaration(t *testing.T) {
	tree, err := Build(DefaultDeclaration("Notch"))
	require.NoError(t, err)

	menus := tree.Menus()
	labels := make([]string, len(menus))
	for i, m := range menus {
		labels[i] = m.Label
	}
	assert.Equal(t, []string{"Notch", "File", "Edit", "View", "Window", "Help"}, labels)

	assert.Equal(t, []CommandID{
		CommandNewNote,
		CommandNewNotebook,
		CommandImport,
		CommandExport,
		CommandExportLibrary,
		CommandToggleSidebar,
		CommandSinglePane,
		CommandDoublePane,
		CommandTriplePane,
		CommandEditorOnly,
		CommandPreviewOnly,
		CommandSplitView,
		CommandDocumentation,
	}, tree.Commands())
}

func TestBuildIsDeterministic(t *testing.T) {
	first := MustBuild(DefaultDeclaration("Notch"))
	second := MustBuild(DefaultDeclaration("Notch"))

	assert.Equal(t, first.Menus(), second.Menus())
	assert.Equal(t, first.Commands(), second.Commands())
	require.NotEmpty(t, first.Digest())
	assert.Equal(t, first.Digest(), second.Digest())
}

func TestBuildRejectsDuplicateCommand(t *testing.T) {
	decl := Declaration{
		Submenu("File", Item("new_note", "New Note", "CmdOrCtrl+N")),
		Submenu("Other", Item("new_note", "Another Note", "")),
	}

	tree, err := Build(decl)
	require.Error(t, err)
	assert.Nil(t, tree)
	assert.True(t, errors.Is(err, ErrDuplicateCommand))

	var buildErr *BuildError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, "Other/Another Note", buildErr.Path)
}

func TestBuildRejectsDuplicateAccelerator(t *testing.T) {
	tests := []struct {
		name  string
		first Accelerator
		other Accelerator
	}{
		{name: "identical", first: "CmdOrCtrl+N", other: "CmdOrCtrl+N"},
		{name: "case", first: "CmdOrCtrl+N", other: "cmdorctrl+n"},
		{name: "modifier order", first: "CmdOrCtrl+Shift+E", other: "Shift+CmdOrCtrl+E"},
		{name: "alias", first: "Alt+F4", other: "Option+f4"},
		{name: "primary is ctrl", first: "CmdOrCtrl+N", other: "Ctrl+N"},
		{name: "primary is cmd", first: "CmdOrCtrl+N", other: "Cmd+N"},
		{name: "primary after ctrl", first: "Ctrl+Shift+I", other: "Shift+CmdOrCtrl+I"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := Declaration{
				Submenu("File",
					Item("a", "A", tt.first),
					Item("b", "B", tt.other),
				),
			}
			_, err := Build(decl)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDuplicateAccelerator))
		})
	}
}

func TestBuildAllowsDistinctModifiers(t *testing.T) {
	decl := Declaration{
		Submenu("File",
			Item("a", "A", "CmdOrCtrl+N"),
			Item("b", "B", "CmdOrCtrl+Shift+N"),
			Item("c", "C", "N"),
			Item("d", "D", "Ctrl+Alt+N"),
			Item("e", "E", "Cmd+Alt+N"),
		),
	}
	_, err := Build(decl)
	require.NoError(t, err)
}

func TestBuildRejectsLeafWithoutCommand(t *testing.T) {
	decl := Declaration{Submenu("File", Item("", "Orphan", ""))}

	_, err := Build(decl)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingCommand))
}

func TestBuildReportsEveryViolation(t *testing.T) {
	decl := Declaration{
		Submenu("File",
			Item("x", "X", "CmdOrCtrl+1"),
			Item("x", "Y", "CmdOrCtrl+1"),
			Item("", "Z", ""),
		),
	}

	_, err := Build(decl)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateCommand))
	assert.True(t, errors.Is(err, ErrDuplicateAccelerator))
	assert.True(t, errors.Is(err, ErrMissingCommand))
}

func TestBuildRejectsMalformedStructure(t *testing.T) {
	tests := []struct {
		name string
		decl Declaration
	}{
		{name: "top-level leaf", decl: Declaration{Item("a", "A", "")}},
		{name: "top-level separator", decl: Declaration{Separator()}},
		{name: "unlabelled submenu", decl: Declaration{Submenu("")}},
		{name: "unknown action", decl: Declaration{Submenu("App", Predefined("teleport", ""))}},
		{name: "bad accelerator", decl: Declaration{Submenu("File", Item("a", "A", "Hyper+N"))}},
		{name: "leaf without label", decl: Declaration{Submenu("File", Item("a", "", ""))}},
		{name: "labelled separator", decl: Declaration{Submenu("File", Node{Kind: KindSeparator, Label: "--"})}},
		{name: "untyped node", decl: Declaration{Submenu("File", Node{Label: "?"})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.decl)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
		})
	}
}

func TestMustBuildPanicsOnViolation(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild(Declaration{Submenu("File", Item("", "Orphan", ""))})
	})
}

func TestBuildCopiesDeclaration(t *testing.T) {
	decl := DefaultDeclaration("Notch")
	tree := MustBuild(decl)
	digest := tree.Digest()

	decl[1].Children[0].Label = "Mutated"
	assert.Equal(t, digest, tree.Digest())

	node, ok := tree.Lookup(CommandNewNote)
	require.True(t, ok)
	assert.Equal(t, "New Note", node.Label)

	menus := tree.Menus()
	menus[1].Children[0].Label = "Mutated again"
	node, _ = tree.Lookup(CommandNewNote)
	assert.Equal(t, "New Note", node.Label)
	assert.Equal(t, "New Note", tree.Menus()[1].Children[0].Label)
}

func TestDisableRebuildsWithDisabledLeaves(t *testing.T) {
	decl := DefaultDeclaration("Notch")
	disabled := decl.Disable(CommandExport, CommandExportLibrary)

	tree := MustBuild(disabled)
	node, ok := tree.Lookup(CommandExport)
	require.True(t, ok)
	assert.False(t, node.Enabled())

	node, _ = tree.Lookup(CommandNewNote)
	assert.True(t, node.Enabled())

	original := MustBuild(decl)
	node, _ = original.Lookup(CommandExport)
	assert.True(t, node.Enabled(), "Disable must not modify the receiver")
	assert.NotEqual(t, original.Digest(), tree.Digest())
}
