package dispatch

import (
	"github.com/google/uuid"

	"github.com/example/notch/internal/logging"
	"github.com/example/notch/internal/logging/events"
	"github.com/example/notch/internal/menu"
)

// ViewHandle is the active view surface. Deliver must not block; a slow view
// must queue internally.
type ViewHandle interface {
	Deliver(sig Signal)
}

// Outcome describes what an activation did.
type Outcome int

const (
	// Delivered means exactly one signal reached the active view.
	Delivered Outcome = iota
	// NoView means the command was valid but no view was active.
	NoView
	// Unmapped means the command has no view signal (reserved or shell-handled).
	Unmapped
	// Unknown means the command is not part of the installed tree.
	Unknown
	// Disabled means the entry is currently disabled in the installed tree.
	Disabled
)

func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case NoView:
		return "no-view"
	case Unmapped:
		return "unmapped"
	case Unknown:
		return "unknown"
	case Disabled:
		return "disabled"
	default:
		return "invalid"
	}
}

// Dispatcher turns menu activations into view signals. It is not safe for
// concurrent use; the shell calls it from its event loop only.
type Dispatcher struct {
	tree   *menu.Tree
	table  Table
	active ViewHandle
	newID  func() string
}

// New constructs a Dispatcher for the installed tree.
func New(tree *menu.Tree, table Table) *Dispatcher {
	return &Dispatcher{
		tree:  tree,
		table: table,
		newID: uuid.NewString,
	}
}

// Install replaces the tree activations are validated against.
func (d *Dispatcher) Install(tree *menu.Tree) {
	d.tree = tree
}

// SetActive records the view that receives signals. nil clears it.
func (d *Dispatcher) SetActive(view ViewHandle) {
	d.active = view
}

// Active returns the current view, or nil.
func (d *Dispatcher) Active() ViewHandle {
	return d.active
}

// Activate handles one user activation of the leaf bound to id. At most one
// signal is delivered; failures are logged and never returned.
func (d *Dispatcher) Activate(id menu.CommandID) Outcome {
	invocation := d.newID()
	events.Command.Activate(invocation, string(id))

	if d.tree == nil {
		logging.Errorf("activation of %q before a menu was installed", id)
		events.Command.Unknown(invocation, string(id))
		return Unknown
	}
	node, ok := d.tree.Lookup(id)
	if !ok {
		logging.Errorf("activation of unknown command %q", id)
		events.Command.Unknown(invocation, string(id))
		return Unknown
	}
	if !node.Enabled() {
		logging.Debugf("ignoring activation of disabled command %q", id)
		events.Command.Disabled(invocation, string(id))
		return Disabled
	}

	sig, ok := d.table.Lookup(id)
	if !ok {
		logging.Debugf("command %q has no view signal", id)
		events.Command.Unmapped(invocation, string(id))
		return Unmapped
	}

	if d.active == nil {
		logging.Debugf("no active view for %q; dropping %s", id, sig)
		events.Command.Drop(invocation, string(id))
		return NoView
	}

	d.active.Deliver(sig)
	logging.Debugf("delivered %s for %q (invocation %s)", sig, id, invocation)
	events.Command.Deliver(invocation, string(id), sig.String())
	return Delivered
}
