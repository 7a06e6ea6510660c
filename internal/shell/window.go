//go:build cgo
// +build cgo

package shell

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/example/notch/internal/config"
	"github.com/example/notch/internal/logging"
	"github.com/example/notch/internal/menu"
	"github.com/example/notch/internal/view"
)

type windowController struct {
	appName   string
	namespace string
}

func newWindowController(appName, namespace string) controller {
	return &windowController{appName: appName, namespace: namespace}
}

func (c *windowController) Run(ctx context.Context, updates <-chan *menu.Tree, ev Events) error {
	a := app.NewWithID("io.notch." + strings.ToLower(strings.ReplaceAll(c.appName, " ", "")))
	w := a.NewWindow(c.appName)

	status := widget.NewLabel("Ready")
	status.Wrapping = fyne.TextWrapWord
	w.SetContent(container.NewPadded(status))
	w.Resize(fyne.NewSize(960, 640))

	surface := view.NewScript("main", c.namespace, view.EvaluatorFunc(func(script string) error {
		status.SetText(script)
		return nil
	}))
	host := &windowHost{app: a, win: w, appName: c.appName}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case tree, ok := <-updates:
		if !ok {
			return nil
		}
		w.SetMainMenu(mainMenu(tree, ev.Activate, host))
	}

	a.Lifecycle().SetOnEnteredForeground(func() { ev.Focus(surface) })
	w.SetOnClosed(ev.Blur)
	ev.Focus(surface)

	go func() {
		for {
			select {
			case <-ctx.Done():
				a.Quit()
				return
			case tree, ok := <-updates:
				if !ok {
					a.Quit()
					return
				}
				logging.Debugf("rendering rebuilt menu (digest=%s)", tree.Digest())
				w.SetMainMenu(mainMenu(tree, ev.Activate, host))
			}
		}
	}()

	w.ShowAndRun()
	return ctx.Err()
}

// windowHost performs predefined actions that fyne can express on a window.
type windowHost struct {
	app     fyne.App
	win     fyne.Window
	appName string
}

func (h *windowHost) Supports(action menu.Action) bool {
	switch action {
	case menu.ActionAbout, menu.ActionQuit, menu.ActionCloseWindow, menu.ActionFullscreen,
		menu.ActionUndo, menu.ActionRedo, menu.ActionCut, menu.ActionCopy, menu.ActionPaste,
		menu.ActionSelectAll:
		return true
	default:
		return false
	}
}

func (h *windowHost) Perform(action menu.Action) {
	switch action {
	case menu.ActionAbout:
		dialog.ShowInformation("About "+h.appName, fmt.Sprintf("%s %s", h.appName, config.Version), h.win)
	case menu.ActionQuit:
		h.app.Quit()
	case menu.ActionCloseWindow:
		h.win.Close()
	case menu.ActionFullscreen:
		h.win.SetFullScreen(!h.win.FullScreen())
	case menu.ActionUndo:
		h.typeShortcut(&fyne.ShortcutUndo{})
	case menu.ActionRedo:
		h.typeShortcut(&fyne.ShortcutRedo{})
	case menu.ActionCut:
		h.typeShortcut(&fyne.ShortcutCut{Clipboard: h.win.Clipboard()})
	case menu.ActionCopy:
		h.typeShortcut(&fyne.ShortcutCopy{Clipboard: h.win.Clipboard()})
	case menu.ActionPaste:
		h.typeShortcut(&fyne.ShortcutPaste{Clipboard: h.win.Clipboard()})
	case menu.ActionSelectAll:
		h.typeShortcut(&fyne.ShortcutSelectAll{})
	default:
		logging.Debugf("predefined action %q is not available in the window shell", action)
	}
}

func (h *windowHost) typeShortcut(shortcut fyne.Shortcut) {
	target, ok := h.win.Canvas().Focused().(fyne.Shortcutable)
	if !ok {
		return
	}
	target.TypedShortcut(shortcut)
}
