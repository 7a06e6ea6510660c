//go:build cgo || windows
// +build cgo windows

package shell

import (
	"context"
	"os"
	"sync"

	"github.com/getlantern/systray"

	"github.com/example/notch/internal/logging"
	"github.com/example/notch/internal/menu"
	"github.com/example/notch/internal/view"
)

type trayController struct {
	appName   string
	namespace string

	mu       sync.Mutex
	rendered trayDigest
	items    *trayItems
}

func newTrayController(appName, namespace string) controller {
	return &trayController{appName: appName, namespace: namespace}
}

// Run shows the menu in the system tray. The tray has no view surface of its
// own; signals are written to stdout as scripts for an attached view process.
func (c *trayController) Run(ctx context.Context, updates <-chan *menu.Tree, ev Events) error {
	done := make(chan struct{})
	surface := view.NewScript("stdout", c.namespace, view.NewWriter(os.Stdout))

	go systray.Run(func() {
		systray.SetTitle(c.appName)
		systray.SetTooltip(c.appName)
		ev.Focus(surface)
		go c.listen(ctx, updates, ev)
	}, func() {
		ev.Blur()
		c.mu.Lock()
		c.items.release()
		c.items = nil
		c.mu.Unlock()
		close(done)
	})

	select {
	case <-ctx.Done():
		systray.Quit()
		<-done
		return ctx.Err()
	case <-done:
		return nil
	}
}

func (c *trayController) listen(ctx context.Context, updates <-chan *menu.Tree, ev Events) {
	for {
		select {
		case <-ctx.Done():
			systray.Quit()
			return
		case tree, ok := <-updates:
			if !ok {
				systray.Quit()
				return
			}
			c.render(ctx, tree, ev)
		}
	}
}

// render replaces the tray items when the tree differs from the one shown.
func (c *trayController) render(ctx context.Context, tree *menu.Tree, ev Events) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.rendered.changed(tree) {
		logging.Debugf("tray menu already shows digest %s", tree.Digest())
		return
	}
	c.items.release()

	items := &trayItems{ctx: ctx}
	for _, m := range tree.Menus() {
		items.addNode(m, nil, ev)
	}
	c.items = items
	logging.Debugf("rendered tray menu with %d items (digest=%s)", len(items.watched), tree.Digest())
}

// trayItems is one rendering of a tree: the systray items and the click
// watchers bound to them.
type trayItems struct {
	ctx     context.Context
	watched []*systray.MenuItem
	stops   []context.CancelFunc
}

func (t *trayItems) add(parent *systray.MenuItem, label, tooltip string) *systray.MenuItem {
	var mi *systray.MenuItem
	if parent != nil {
		mi = parent.AddSubMenuItem(label, tooltip)
	} else {
		mi = systray.AddMenuItem(label, tooltip)
	}
	t.watched = append(t.watched, mi)
	return mi
}

// watch runs onClick for each click until the rendering is released. A nil
// onClick only drains the channel.
func (t *trayItems) watch(mi *systray.MenuItem, onClick func()) {
	ctx, stop := context.WithCancel(t.ctx)
	t.stops = append(t.stops, stop)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-mi.ClickedCh:
				if !ok {
					return
				}
				if onClick != nil {
					onClick()
				}
			}
		}
	}()
}

// release stops the watchers and hides the items. Nil-safe.
func (t *trayItems) release() {
	if t == nil {
		return
	}
	for _, stop := range t.stops {
		stop()
	}
	for _, mi := range t.watched {
		mi.Hide()
	}
}

func (t *trayItems) addNode(n menu.Node, parent *systray.MenuItem, ev Events) {
	switch n.Kind {
	case menu.KindSeparator:
		if parent == nil {
			systray.AddSeparator()
			return
		}
		t.add(parent, traySeparatorLabel, "").Disable()
	case menu.KindSubmenu:
		mi := t.add(parent, n.Label, "")
		t.watch(mi, nil)
		for _, child := range n.Children {
			t.addNode(child, mi, ev)
		}
	case menu.KindLeaf:
		mi := t.add(parent, n.Label, trayTooltip(n))
		if !n.Enabled() {
			mi.Disable()
		}
		id := n.Command
		t.watch(mi, func() { ev.Activate(id) })
	case menu.KindPredefined:
		mi := t.add(parent, n.DisplayLabel(), "")
		if !traySupports(n.Action) {
			mi.Disable()
			return
		}
		t.watch(mi, systray.Quit)
	}
}
