package app

import "fyne.io/fyne/v2"

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New", a.handleNew),
		fyne.NewMenuItem("Open...", a.handleOpen),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save", func() {
			a.handleSave(false)
		}),
		fyne.NewMenuItem("Save As...", func() {
			a.handleSave(true)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.lifecycle.Shutdown()
			a.fyneApp.Quit()
		}),
	)

	formatMenu := fyne.NewMenu("Format",
		fyne.NewMenuItem("Insert Heading", a.handleInsertHeading),
		fyne.NewMenuItem("Insert Link...", a.handleInsertLink),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open Link at Caret", a.handleOpenLink),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, formatMenu))
}
