package menu

// DefaultDeclaration returns the Notch menu bar. appName titles the
// application menu.
func DefaultDeclaration(appName string) Declaration {
	if appName == "" {
		appName = "Notch"
	}
	return Declaration{
		Submenu(appName,
			Predefined(ActionAbout, "About "+appName),
			Separator(),
			Predefined(ActionServices, ""),
			Separator(),
			Predefined(ActionHide, ""),
			Predefined(ActionHideOthers, ""),
			Predefined(ActionShowAll, ""),
			Separator(),
			Predefined(ActionQuit, ""),
		),
		Submenu("File",
			Item(CommandNewNote, "New Note", "CmdOrCtrl+N"),
			Item(CommandNewNotebook, "New Notebook", "CmdOrCtrl+Shift+N"),
			Separator(),
			Item(CommandImport, "Import Quiver Library...", "CmdOrCtrl+Shift+I"),
			Item(CommandExport, "Export Note...", "CmdOrCtrl+Shift+E"),
			Item(CommandExportLibrary, "Export Library...", ""),
			Separator(),
			Predefined(ActionCloseWindow, ""),
		),
		Submenu("Edit",
			Predefined(ActionUndo, ""),
			Predefined(ActionRedo, ""),
			Separator(),
			Predefined(ActionCut, ""),
			Predefined(ActionCopy, ""),
			Predefined(ActionPaste, ""),
			Predefined(ActionSelectAll, ""),
		),
		Submenu("View",
			Item(CommandToggleSidebar, "Toggle Sidebar", "CmdOrCtrl+0"),
			Separator(),
			Item(CommandSinglePane, "Single Pane", "CmdOrCtrl+1"),
			Item(CommandDoublePane, "Two Panes", "CmdOrCtrl+2"),
			Item(CommandTriplePane, "Three Panes", "CmdOrCtrl+3"),
			Separator(),
			Item(CommandEditorOnly, "Editor Only", "CmdOrCtrl+4"),
			Item(CommandPreviewOnly, "Preview Only", "CmdOrCtrl+5"),
			Item(CommandSplitView, "Side by Side", "CmdOrCtrl+6"),
			Separator(),
			Predefined(ActionFullscreen, ""),
		),
		Submenu("Window",
			Predefined(ActionMinimize, ""),
			Predefined(ActionMaximize, ""),
			Separator(),
			Predefined(ActionCloseWindow, ""),
		),
		Submenu("Help",
			Item(CommandDocumentation, "Documentation", ""),
		),
	}
}
