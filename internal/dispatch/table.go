package dispatch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/example/notch/internal/menu"
)

// Table maps command ids to the signal the view layer receives. Adding a
// command is a new entry here, not a new branch in the dispatcher.
type Table map[menu.CommandID]func() Signal

// DefaultTable returns the Notch command mapping.
func DefaultTable() Table {
	return Table{
		menu.CommandNewNote:       NewNote,
		menu.CommandNewNotebook:   NewNotebook,
		menu.CommandImport:        ImportLibrary,
		menu.CommandExport:        ExportNote,
		menu.CommandExportLibrary: ExportLibrary,
		menu.CommandToggleSidebar: ToggleSidebar,
		menu.CommandSinglePane:    func() Signal { return SetLayoutMode(LayoutSingle) },
		menu.CommandDoublePane:    func() Signal { return SetLayoutMode(LayoutDouble) },
		menu.CommandTriplePane:    func() Signal { return SetLayoutMode(LayoutTriple) },
		menu.CommandEditorOnly:    func() Signal { return SetEditorViewMode(ViewEditor) },
		menu.CommandPreviewOnly:   func() Signal { return SetEditorViewMode(ViewPreview) },
		menu.CommandSplitView:     func() Signal { return SetEditorViewMode(ViewSplit) },
	}
}

// Reserved lists command ids that appear in the menu but intentionally have
// no view signal yet.
var Reserved = []menu.CommandID{menu.CommandDocumentation}

// Lookup returns the signal bound to id.
func (t Table) Lookup(id menu.CommandID) (Signal, bool) {
	build, ok := t[id]
	if !ok || build == nil {
		return Signal{}, false
	}
	return build(), true
}

// IDs lists the mapped command ids in lexical order.
func (t Table) IDs() []menu.CommandID {
	ids := make([]menu.CommandID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Check verifies that every leaf of tree is either mapped or reserved and that
// every mapping targets a leaf of tree.
func (t Table) Check(tree *menu.Tree, reserved ...menu.CommandID) error {
	skip := make(map[menu.CommandID]struct{}, len(reserved))
	for _, id := range reserved {
		skip[id] = struct{}{}
	}

	var errs []error
	for _, id := range tree.Commands() {
		if _, ok := skip[id]; ok {
			if _, mapped := t[id]; mapped {
				errs = append(errs, fmt.Errorf("command %q is both reserved and mapped", id))
			}
			continue
		}
		if t[id] == nil {
			errs = append(errs, fmt.Errorf("command %q has no signal", id))
		}
	}
	for _, id := range t.IDs() {
		if !tree.Contains(id) {
			errs = append(errs, fmt.Errorf("signal for %q has no menu entry", id))
		}
	}
	return errors.Join(errs...)
}
