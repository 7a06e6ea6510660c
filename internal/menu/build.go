package menu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateCommand is reported when two leaves share a command id.
	ErrDuplicateCommand = errors.New("duplicate command id")
	// ErrDuplicateAccelerator is reported when two leaves share a chord.
	ErrDuplicateAccelerator = errors.New("duplicate accelerator")
	// ErrMissingCommand is reported for a leaf without a command id.
	ErrMissingCommand = errors.New("leaf without command id")
	// ErrMalformed covers every other structural violation.
	ErrMalformed = errors.New("malformed menu declaration")
)

// BuildError locates a declaration violation by its label path.
type BuildError struct {
	Path   string
	Err    error
	Detail string
}

func (e *BuildError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("menu %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("menu %s: %v: %s", e.Path, e.Err, e.Detail)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Declaration is the static description of the menu bar: an ordered list of
// top-level submenus.
type Declaration []Node

// Disable returns a copy of the declaration with the given commands disabled.
func (d Declaration) Disable(ids ...CommandID) Declaration {
	set := make(map[CommandID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	out := Declaration(cloneNodes(d))
	for i := range out {
		disableIn(&out[i], set)
	}
	return out
}

func disableIn(n *Node, set map[CommandID]struct{}) {
	if n.Kind == KindLeaf {
		if _, ok := set[n.Command]; ok {
			n.Disabled = true
		}
	}
	for i := range n.Children {
		disableIn(&n.Children[i], set)
	}
}

// Build validates the declaration and freezes it into a Tree. Every violation
// found is reported; the returned error matches the sentinel errors above via
// errors.Is.
func Build(decl Declaration) (*Tree, error) {
	b := &builder{
		commands: make(map[CommandID]string),
		chords:   make(map[string]string),
	}

	menus := make([]Node, 0, len(decl))
	for idx, n := range decl {
		path := n.Label
		if path == "" {
			path = fmt.Sprintf("#%d", idx)
		}
		if n.Kind != KindSubmenu {
			b.fail(path, ErrMalformed, fmt.Sprintf("top-level entry is %s, want submenu", kindName(n.Kind)))
			continue
		}
		menus = append(menus, b.visit(n, nil, idx))
	}

	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return newTree(menus), nil
}

// MustBuild is Build for declarations known at compile time; it panics on
// any violation.
func MustBuild(decl Declaration) *Tree {
	tree, err := Build(decl)
	if err != nil {
		panic(err)
	}
	return tree
}

type builder struct {
	commands map[CommandID]string
	chords   map[string]string
	errs     []error
}

func (b *builder) fail(path string, err error, detail string) {
	b.errs = append(b.errs, &BuildError{Path: path, Err: err, Detail: detail})
}

func (b *builder) visit(n Node, parents []string, idx int) Node {
	label := n.DisplayLabel()
	if label == "" {
		label = fmt.Sprintf("#%d", idx)
	}
	segments := append(append([]string(nil), parents...), label)
	path := strings.Join(segments, "/")

	out := n
	out.Children = nil

	switch n.Kind {
	case KindSubmenu:
		if strings.TrimSpace(n.Label) == "" {
			b.fail(path, ErrMalformed, "submenu without label")
		}
		if n.Command != "" || n.Accelerator != "" || n.Action != "" {
			b.fail(path, ErrMalformed, "submenu carries leaf or action fields")
		}
		if len(n.Children) > 0 {
			out.Children = make([]Node, 0, len(n.Children))
			for i, child := range n.Children {
				out.Children = append(out.Children, b.visit(child, segments, i))
			}
		}
	case KindLeaf:
		b.leaf(n, path)
	case KindSeparator:
		if n.Label != "" || n.Command != "" || n.Accelerator != "" || n.Action != "" || len(n.Children) > 0 {
			b.fail(path, ErrMalformed, "separator carries fields")
		}
	case KindPredefined:
		if !n.Action.Known() {
			b.fail(path, ErrMalformed, fmt.Sprintf("unknown predefined action %q", n.Action))
		}
		if n.Command != "" || n.Accelerator != "" || len(n.Children) > 0 {
			b.fail(path, ErrMalformed, "predefined entry carries application fields")
		}
	default:
		b.fail(path, ErrMalformed, fmt.Sprintf("unknown node kind %q", n.Kind))
	}
	return out
}

func (b *builder) leaf(n Node, path string) {
	if strings.TrimSpace(n.Label) == "" {
		b.fail(path, ErrMalformed, "leaf without label")
	}
	if len(n.Children) > 0 || n.Action != "" {
		b.fail(path, ErrMalformed, "leaf carries submenu or action fields")
	}

	if n.Command == "" {
		b.fail(path, ErrMissingCommand, "")
	} else if prev, ok := b.commands[n.Command]; ok {
		b.fail(path, ErrDuplicateCommand, fmt.Sprintf("%q already used by %s", n.Command, prev))
	} else {
		b.commands[n.Command] = path
	}

	if n.Accelerator == "" {
		return
	}
	chord, err := n.Accelerator.Parse()
	if err != nil {
		b.fail(path, ErrMalformed, err.Error())
		return
	}
	// Chords are keyed by what they bind on each platform, so CmdOrCtrl+N
	// collides with both Ctrl+N and Cmd+N.
	resolved := chord.Resolutions()
	for _, r := range resolved {
		if prev, ok := b.chords[r.String()]; ok {
			b.fail(path, ErrDuplicateAccelerator, fmt.Sprintf("%s binds %s, already used by %s", chord, r, prev))
			return
		}
	}
	for _, r := range resolved {
		b.chords[r.String()] = path
	}
}

func kindName(k Kind) string {
	if k == "" {
		return "untyped"
	}
	return string(k)
}
