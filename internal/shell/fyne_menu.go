package shell

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/example/notch/internal/menu"
)

// platformHost performs predefined actions on behalf of the menu.
type platformHost interface {
	Supports(action menu.Action) bool
	Perform(action menu.Action)
}

// mainMenu converts a tree into a fyne main menu. Leaves report activations;
// predefined entries go to host and never reach the dispatcher.
func mainMenu(tree *menu.Tree, activate func(menu.CommandID), host platformHost) *fyne.MainMenu {
	menus := tree.Menus()
	out := make([]*fyne.Menu, 0, len(menus))
	for _, m := range menus {
		out = append(out, fyne.NewMenu(m.Label, menuItems(m.Children, activate, host)...))
	}
	return fyne.NewMainMenu(out...)
}

func menuItems(nodes []menu.Node, activate func(menu.CommandID), host platformHost) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(nodes))
	for _, n := range nodes {
		if item := menuItem(n, activate, host); item != nil {
			items = append(items, item)
		}
	}
	return items
}

func menuItem(n menu.Node, activate func(menu.CommandID), host platformHost) *fyne.MenuItem {
	switch n.Kind {
	case menu.KindSeparator:
		return fyne.NewMenuItemSeparator()
	case menu.KindSubmenu:
		item := fyne.NewMenuItem(n.Label, nil)
		item.ChildMenu = fyne.NewMenu("", menuItems(n.Children, activate, host)...)
		return item
	case menu.KindLeaf:
		id := n.Command
		item := fyne.NewMenuItem(n.Label, func() { activate(id) })
		item.Disabled = !n.Enabled()
		if shortcut, ok := shortcutFor(n.Accelerator); ok {
			item.Shortcut = shortcut
		}
		return item
	case menu.KindPredefined:
		action := n.Action
		item := fyne.NewMenuItem(n.DisplayLabel(), func() { host.Perform(action) })
		item.IsQuit = action == menu.ActionQuit
		item.Disabled = !host.Supports(action)
		return item
	default:
		return nil
	}
}

var fyneNamedKeys = map[string]fyne.KeyName{
	"Enter":     fyne.KeyReturn,
	"Tab":       fyne.KeyTab,
	"Space":     fyne.KeySpace,
	"Escape":    fyne.KeyEscape,
	"Backspace": fyne.KeyBackspace,
	"Delete":    fyne.KeyDelete,
	"Up":        fyne.KeyUp,
	"Down":      fyne.KeyDown,
	"Left":      fyne.KeyLeft,
	"Right":     fyne.KeyRight,
	"Home":      fyne.KeyHome,
	"End":       fyne.KeyEnd,
	"PageUp":    fyne.KeyPageUp,
	"PageDown":  fyne.KeyPageDown,
}

// shortcutFor maps an accelerator onto a fyne shortcut. Keys fyne cannot
// express leave the entry without a shortcut.
func shortcutFor(accel menu.Accelerator) (fyne.Shortcut, bool) {
	if accel == "" {
		return nil, false
	}
	chord, err := accel.Parse()
	if err != nil {
		return nil, false
	}

	key, ok := fyneNamedKeys[chord.Key]
	if !ok {
		switch {
		case len(chord.Key) == 1:
			key = fyne.KeyName(chord.Key)
		case len(chord.Key) > 1 && chord.Key[0] == 'F':
			key = fyne.KeyName(chord.Key)
		default:
			return nil, false
		}
	}

	var mod fyne.KeyModifier
	if chord.Has(menu.ModPrimary) {
		mod |= fyne.KeyModifierShortcutDefault
	}
	if chord.Has(menu.ModCtrl) {
		mod |= fyne.KeyModifierControl
	}
	if chord.Has(menu.ModAlt) {
		mod |= fyne.KeyModifierAlt
	}
	if chord.Has(menu.ModShift) {
		mod |= fyne.KeyModifierShift
	}
	if chord.Has(menu.ModSuper) {
		mod |= fyne.KeyModifierSuper
	}
	return &desktop.CustomShortcut{KeyName: key, Modifier: mod}, true
}
