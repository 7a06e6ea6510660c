package menu

// CommandID identifies a user-invokable action. Only leaf entries carry one.
type CommandID string

// Application commands understood by the command dispatcher.
const (
	CommandNewNote       CommandID = "new_note"
	CommandNewNotebook   CommandID = "new_notebook"
	CommandImport        CommandID = "import"
	CommandExport        CommandID = "export"
	CommandExportLibrary CommandID = "export_library"
	CommandToggleSidebar CommandID = "toggle_sidebar"
	CommandSinglePane    CommandID = "single_pane"
	CommandDoublePane    CommandID = "double_pane"
	CommandTriplePane    CommandID = "triple_pane"
	CommandEditorOnly    CommandID = "editor_only"
	CommandPreviewOnly   CommandID = "preview_only"
	CommandSplitView     CommandID = "split_view"
	CommandDocumentation CommandID = "documentation"
)

// Kind represents the supported menu node variants.
type Kind string

const (
	KindLeaf       Kind = "leaf"
	KindSeparator  Kind = "separator"
	KindSubmenu    Kind = "submenu"
	KindPredefined Kind = "predefined"
)

// Action names an entry whose behaviour is supplied by the host platform.
type Action string

const (
	ActionAbout       Action = "about"
	ActionServices    Action = "services"
	ActionHide        Action = "hide"
	ActionHideOthers  Action = "hide_others"
	ActionShowAll     Action = "show_all"
	ActionQuit        Action = "quit"
	ActionCloseWindow Action = "close_window"
	ActionUndo        Action = "undo"
	ActionRedo        Action = "redo"
	ActionCut         Action = "cut"
	ActionCopy        Action = "copy"
	ActionPaste       Action = "paste"
	ActionSelectAll   Action = "select_all"
	ActionFullscreen  Action = "fullscreen"
	ActionMinimize    Action = "minimize"
	ActionMaximize    Action = "maximize"
)

var actionLabels = map[Action]string{
	ActionAbout:       "About",
	ActionServices:    "Services",
	ActionHide:        "Hide",
	ActionHideOthers:  "Hide Others",
	ActionShowAll:     "Show All",
	ActionQuit:        "Quit",
	ActionCloseWindow: "Close Window",
	ActionUndo:        "Undo",
	ActionRedo:        "Redo",
	ActionCut:         "Cut",
	ActionCopy:        "Copy",
	ActionPaste:       "Paste",
	ActionSelectAll:   "Select All",
	ActionFullscreen:  "Toggle Full Screen",
	ActionMinimize:    "Minimize",
	ActionMaximize:    "Zoom",
}

// Known reports whether the host shell recognises the action.
func (a Action) Known() bool {
	_, ok := actionLabels[a]
	return ok
}

// DefaultLabel returns the platform label used when a declaration omits one.
func (a Action) DefaultLabel() string {
	return actionLabels[a]
}

// Node is a single entry of the application menu. Which fields are meaningful
// depends on Kind.
type Node struct {
	Kind        Kind        `json:"kind"`
	Label       string      `json:"label,omitempty"`
	Command     CommandID   `json:"command,omitempty"`
	Accelerator Accelerator `json:"accelerator,omitempty"`
	Disabled    bool        `json:"disabled,omitempty"`
	Action      Action      `json:"action,omitempty"`
	Children    []Node      `json:"children,omitempty"`
}

// Enabled reports whether the entry can be activated.
func (n Node) Enabled() bool {
	return !n.Disabled
}

// DisplayLabel falls back to the platform label for predefined actions.
func (n Node) DisplayLabel() string {
	if n.Label == "" && n.Kind == KindPredefined {
		return n.Action.DefaultLabel()
	}
	return n.Label
}

// Item declares an application command entry. An empty accelerator means none.
func Item(id CommandID, label string, accelerator Accelerator) Node {
	return Node{Kind: KindLeaf, Label: label, Command: id, Accelerator: accelerator}
}

// Separator declares a divider line.
func Separator() Node {
	return Node{Kind: KindSeparator}
}

// Submenu declares a labelled group of entries in on-screen order.
func Submenu(label string, children ...Node) Node {
	return Node{Kind: KindSubmenu, Label: label, Children: children}
}

// Predefined declares a host-supplied entry. label may be empty.
func Predefined(action Action, label string) Node {
	return Node{Kind: KindPredefined, Action: action, Label: label}
}

func cloneNode(n Node) Node {
	out := n
	if len(n.Children) > 0 {
		out.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = cloneNode(child)
		}
	} else {
		out.Children = nil
	}
	return out
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}
