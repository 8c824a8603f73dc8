package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"inkwell/internal/logger"
)

// Manager owns the editing surface and the status bar. The editor holds
// the document's raw markup as plain text; formatting commands operate
// on it through rune offsets derived from the widget caret.
type Manager struct {
	window fyne.Window
	logger logger.Logger

	editor *widget.Entry
	status *widget.Label

	contentChangedHandler func(string)
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	editor := widget.NewMultiLineEntry()
	editor.Wrapping = fyne.TextWrapWord

	manager := &Manager{
		window: window,
		logger: log,
		editor: editor,
		status: widget.NewLabel("Ready"),
	}

	editor.OnChanged = func(text string) {
		if manager.contentChangedHandler != nil {
			manager.contentChangedHandler(text)
		}
	}

	log.Info("GUIManager", "initialized", nil)
	return manager
}

func (m *Manager) SetContentChangedHandler(handler func(string)) {
	m.contentChangedHandler = handler
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	return container.NewBorder(nil, m.status, nil, nil, m.editor)
}

// SetContent replaces the editor text wholesale. The change handler
// fires, keeping the session in step.
func (m *Manager) SetContent(markup string) {
	m.editor.SetText(markup)
}

func (m *Manager) Content() string {
	return m.editor.Text
}

// CaretOffset reports the caret as a rune offset into the content.
func (m *Manager) CaretOffset() int {
	return caretToOffset(m.editor.Text, m.editor.CursorRow, m.editor.CursorColumn)
}

// SetCaretOffset moves the caret to a rune offset, clamped to the text.
func (m *Manager) SetCaretOffset(offset int) {
	row, col := offsetToCaret(m.editor.Text, offset)
	m.editor.CursorRow = row
	m.editor.CursorColumn = col
	m.editor.Refresh()
}

func (m *Manager) FocusEditor() {
	m.window.Canvas().Focus(m.editor)
}

func (m *Manager) UpdateStatus(message string) {
	m.status.SetText(message)
}

func (m *Manager) Shutdown() {
	m.contentChangedHandler = nil
}
