package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/notch/internal/menu"
)

func TestTrayTooltip(t *testing.T) {
	assert.Equal(t, "CmdOrCtrl+Shift+E", trayTooltip(menu.Item(menu.CommandExport, "Export Note...", "shift+cmdorctrl+e")))
	assert.Empty(t, trayTooltip(menu.Item(menu.CommandExportLibrary, "Export Library...", "")))
	assert.Empty(t, trayTooltip(menu.Predefined(menu.ActionQuit, "")))
}

func TestTraySupportsOnlyQuit(t *testing.T) {
	assert.True(t, traySupports(menu.ActionQuit))
	assert.False(t, traySupports(menu.ActionCopy))
	assert.False(t, traySupports(menu.ActionFullscreen))
}

func TestTrayDigestSkipsUnchangedTrees(t *testing.T) {
	decl := menu.DefaultDeclaration("Notch")
	var d trayDigest

	assert.True(t, d.changed(menu.MustBuild(decl)))
	assert.False(t, d.changed(menu.MustBuild(decl)))
	assert.True(t, d.changed(menu.MustBuild(decl.Disable(menu.CommandExport))))
	assert.True(t, d.changed(menu.MustBuild(decl)))
}
