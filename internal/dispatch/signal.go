package dispatch

import "fmt"

// Names of the signals the view layer accepts.
const (
	SignalNewNote           = "newNote"
	SignalNewNotebook       = "newNotebook"
	SignalImportLibrary     = "importLibrary"
	SignalExportNote        = "exportNote"
	SignalExportLibrary     = "exportLibrary"
	SignalToggleSidebar     = "toggleSidebar"
	SignalSetLayoutMode     = "setLayoutMode"
	SignalSetEditorViewMode = "setEditorViewMode"
)

// LayoutMode selects how many note panes the view shows.
type LayoutMode string

const (
	LayoutSingle LayoutMode = "single"
	LayoutDouble LayoutMode = "double"
	LayoutTriple LayoutMode = "triple"
)

// EditorViewMode selects what the content pane renders.
type EditorViewMode string

const (
	ViewEditor  EditorViewMode = "editor"
	ViewPreview EditorViewMode = "preview"
	ViewSplit   EditorViewMode = "split"
)

// Signal is a named, payload-free message for the view layer. Mode-selecting
// signals carry their mode as a fixed argument that is part of the signal's
// identity, not data supplied at activation time.
type Signal struct {
	Name string
	Arg  string
}

// String renders the signal in call notation, e.g. setLayoutMode('double').
func (s Signal) String() string {
	if s.Arg == "" {
		return s.Name + "()"
	}
	return fmt.Sprintf("%s('%s')", s.Name, s.Arg)
}

func NewNote() Signal       { return Signal{Name: SignalNewNote} }
func NewNotebook() Signal   { return Signal{Name: SignalNewNotebook} }
func ImportLibrary() Signal { return Signal{Name: SignalImportLibrary} }
func ExportNote() Signal    { return Signal{Name: SignalExportNote} }
func ExportLibrary() Signal { return Signal{Name: SignalExportLibrary} }
func ToggleSidebar() Signal { return Signal{Name: SignalToggleSidebar} }

func SetLayoutMode(mode LayoutMode) Signal {
	return Signal{Name: SignalSetLayoutMode, Arg: string(mode)}
}

func SetEditorViewMode(mode EditorViewMode) Signal {
	return Signal{Name: SignalSetEditorViewMode, Arg: string(mode)}
}
