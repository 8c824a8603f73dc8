package gui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"inkwell/internal/logger"
)

func TestManagerContent(t *testing.T) {
	window := test.NewWindow(nil)
	defer window.Close()

	m := NewManager(window, logger.Nop{})

	var changed string
	m.SetContentChangedHandler(func(text string) { changed = text })

	m.SetContent("<p>hello</p>")
	assert.Equal(t, "<p>hello</p>", m.Content())
	assert.Equal(t, "<p>hello</p>", changed)
}

func TestManagerCaret(t *testing.T) {
	window := test.NewWindow(nil)
	defer window.Close()

	m := NewManager(window, logger.Nop{})
	m.SetContent("<p>one</p>\n<p>two</p>")

	m.SetCaretOffset(14)
	assert.Equal(t, 14, m.CaretOffset())

	// Clamped to the end of the text.
	m.SetCaretOffset(999)
	assert.Equal(t, len([]rune(m.Content())), m.CaretOffset())
}
