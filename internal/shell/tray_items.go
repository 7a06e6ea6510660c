package shell

import "github.com/example/notch/internal/menu"

const traySeparatorLabel = "—"

// trayTooltip shows the accelerator, which a tray menu cannot bind.
func trayTooltip(n menu.Node) string {
	if n.Kind != menu.KindLeaf || n.Accelerator == "" {
		return ""
	}
	return n.Accelerator.Canonical()
}

// traySupports reports which predefined actions the tray shell can perform.
func traySupports(action menu.Action) bool {
	return action == menu.ActionQuit
}

// trayDigest remembers the digest of the tree on screen.
type trayDigest struct {
	digest string
}

// changed records tree as rendered and reports whether it differs from the
// previous one.
func (d *trayDigest) changed(tree *menu.Tree) bool {
	digest := tree.Digest()
	if d.digest != "" && digest == d.digest {
		return false
	}
	d.digest = digest
	return true
}
