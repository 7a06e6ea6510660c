package shell

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/example/notch/internal/config"
	"github.com/example/notch/internal/dispatch"
	"github.com/example/notch/internal/logging"
	"github.com/example/notch/internal/logging/events"
	"github.com/example/notch/internal/menu"
)

// controller renders menu trees on a native surface and reports user input
// through Events. Run blocks until the surface closes or ctx is canceled and
// must be called from the main goroutine.
type controller interface {
	Run(ctx context.Context, updates <-chan *menu.Tree, ev Events) error
}

// Events receives input from a controller. Calls never block.
type Events interface {
	Activate(id menu.CommandID)
	Focus(view dispatch.ViewHandle)
	Blur()
}

type eventKind int

const (
	eventActivate eventKind = iota
	eventRebuild
)

type event struct {
	kind  eventKind
	id    menu.CommandID
	menus menuSet
}

// menuSet is the tree shown while a view is focused and, when some commands
// need a view, the tree shown while none is.
type menuSet struct {
	attached *menu.Tree
	detached *menu.Tree
}

// focusChange replaces the active view; a nil view is a blur.
type focusChange struct {
	view dispatch.ViewHandle
}

// Shell hosts the menu. A single event loop owns the dispatcher, so
// activations and rebuilds are handled one at a time in arrival order. Focus
// changes bypass the queue and always apply the latest view.
type Shell struct {
	kind       config.ShellKind
	dispatcher *dispatch.Dispatcher
	ctrl       controller

	menus        menuSet
	viewCommands []menu.CommandID
	focused      bool
	tree         *menu.Tree
	lastDigest   string

	inbox   chan event
	updates chan *menu.Tree

	// focus holds the latest unapplied focus change; it is never dropped.
	focusMu sync.Mutex
	focus   chan focusChange

	// onOutcome observes dispatch results; tests only.
	onOutcome func(menu.CommandID, dispatch.Outcome)
}

// New constructs a Shell for the configured surface. Commands named in
// cfg.ViewCommands are disabled whenever no view is focused.
func New(cfg *config.Config, decl menu.Declaration, table dispatch.Table) (*Shell, error) {
	if cfg == nil {
		return nil, errors.New("nil configuration")
	}
	tree, err := menu.Build(decl)
	if err != nil {
		return nil, fmt.Errorf("build menu: %w", err)
	}

	var ctrl controller
	switch cfg.Shell {
	case config.ShellWindow:
		ctrl = newWindowController(cfg.AppName, cfg.Namespace)
	case config.ShellTray:
		ctrl = newTrayController(cfg.AppName, cfg.Namespace)
	default:
		return nil, fmt.Errorf("unsupported shell %q", cfg.Shell)
	}

	s := newShell(cfg.Shell, ctrl, tree, table, cfg.EventBuffer)
	ids := make([]menu.CommandID, 0, len(cfg.ViewCommands))
	for _, id := range cfg.ViewCommands {
		ids = append(ids, menu.CommandID(id))
	}
	if err := s.requireView(decl, ids...); err != nil {
		return nil, err
	}
	return s, nil
}

func newShell(kind config.ShellKind, ctrl controller, tree *menu.Tree, table dispatch.Table, buffer int) *Shell {
	if buffer < 1 {
		buffer = 1
	}
	return &Shell{
		kind:       kind,
		dispatcher: dispatch.New(tree, table),
		ctrl:       ctrl,
		menus:      menuSet{attached: tree},
		tree:       tree,
		inbox:      make(chan event, buffer),
		updates:    make(chan *menu.Tree, 1),
		focus:      make(chan focusChange, 1),
	}
}

// requireView disables ids in the menu while no view is focused. It must be
// called before Run.
func (s *Shell) requireView(decl menu.Declaration, ids ...menu.CommandID) error {
	if len(ids) == 0 {
		return nil
	}
	for _, id := range ids {
		if !s.menus.attached.Contains(id) {
			return fmt.Errorf("view command %q is not in the menu", id)
		}
	}
	s.viewCommands = ids
	s.menus = s.menusFor(s.menus.attached, decl)
	s.tree = s.current()
	s.dispatcher.Install(s.tree)
	return nil
}

// menusFor derives the detached tree from decl, which already built as tree.
func (s *Shell) menusFor(tree *menu.Tree, decl menu.Declaration) menuSet {
	set := menuSet{attached: tree}
	if len(s.viewCommands) > 0 {
		set.detached = menu.MustBuild(decl.Disable(s.viewCommands...))
	}
	return set
}

func (s *Shell) current() *menu.Tree {
	if s.focused || s.menus.detached == nil {
		return s.menus.attached
	}
	return s.menus.detached
}

// Run starts the event loop, hands the menu to the controller and blocks until
// the controller returns.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events.Shell.Start(string(s.kind), s.tree.Digest())
	logging.Debugf("starting %s shell with %d commands", s.kind, len(s.tree.Commands()))

	s.lastDigest = s.tree.Digest()
	s.publish(s.tree)

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		s.loop(ctx)
	}()

	err := s.ctrl.Run(ctx, s.updates, s)
	cancel()
	<-loopDone

	reason := "closed"
	if err != nil {
		reason = err.Error()
	}
	events.Shell.Stop(reason)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Activate queues an activation of the leaf bound to id.
func (s *Shell) Activate(id menu.CommandID) {
	s.post(event{kind: eventActivate, id: id})
}

// Focus makes view the target of future activations.
func (s *Shell) Focus(view dispatch.ViewHandle) {
	s.setFocus(focusChange{view: view})
}

// Blur clears the active view; activations are dropped until the next Focus.
func (s *Shell) Blur() {
	s.setFocus(focusChange{})
}

// Rebuild replaces the whole menu. A declaration that fails to build leaves
// the current menu installed.
func (s *Shell) Rebuild(decl menu.Declaration) error {
	tree, err := menu.Build(decl)
	if err != nil {
		return fmt.Errorf("rebuild menu: %w", err)
	}
	s.post(event{kind: eventRebuild, menus: s.menusFor(tree, decl)})
	return nil
}

func (s *Shell) post(ev event) {
	select {
	case s.inbox <- ev:
	default:
		logging.Errorf("shell event queue full; dropping event %d for %q", ev.kind, ev.id)
		events.Shell.Overflow(string(ev.id))
	}
}

// setFocus stores the newest focus change, replacing one the loop has not
// applied yet.
func (s *Shell) setFocus(fc focusChange) {
	s.focusMu.Lock()
	defer s.focusMu.Unlock()
	select {
	case <-s.focus:
	default:
	}
	s.focus <- fc
}

func (s *Shell) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case fc := <-s.focus:
			s.applyFocus(fc)
		case ev := <-s.inbox:
			// A focus change posted before this event must land first.
			select {
			case fc := <-s.focus:
				s.applyFocus(fc)
			default:
			}
			s.handle(ev)
		}
	}
}

func (s *Shell) applyFocus(fc focusChange) {
	s.dispatcher.SetActive(fc.view)
	s.focused = fc.view != nil
	if s.focused {
		events.Shell.Focus(viewName(fc.view))
	} else {
		events.Shell.Blur()
	}
	s.install(s.current())
}

func (s *Shell) handle(ev event) {
	switch ev.kind {
	case eventActivate:
		outcome := s.dispatcher.Activate(ev.id)
		if s.onOutcome != nil {
			s.onOutcome(ev.id, outcome)
		}
	case eventRebuild:
		s.menus = ev.menus
		s.install(s.current())
	}
}

func (s *Shell) install(tree *menu.Tree) {
	digest := tree.Digest()
	if digest != "" && digest == s.lastDigest {
		logging.Debugf("menu unchanged (digest=%s); skipping rebuild", digest)
		return
	}
	s.tree = tree
	s.lastDigest = digest
	s.dispatcher.Install(tree)
	events.Shell.Rebuild(digest, len(tree.Commands()))
	logging.Debugf("installed menu with %d commands (digest=%s)", len(tree.Commands()), digest)
	s.publish(tree)
}

// publish hands the newest tree to the controller, replacing an unconsumed one.
func (s *Shell) publish(tree *menu.Tree) {
	select {
	case s.updates <- tree:
	default:
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- tree:
		default:
		}
	}
}

type named interface {
	Name() string
}

func viewName(view dispatch.ViewHandle) string {
	if n, ok := view.(named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", view)
}
