package gui

import "strings"

// The editing surface is a multiline entry over the raw markup text.
// The caret is addressed two ways: the widget's row/column pair and a
// rune offset into the newline-joined content. These convert between
// the two; both clamp rather than fail.

func caretToOffset(text string, row, col int) int {
	lines := strings.Split(text, "\n")
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len([]rune(lines[i])) + 1
	}
	lineLen := len([]rune(lines[row]))
	if col < 0 {
		col = 0
	}
	if col > lineLen {
		col = lineLen
	}
	return offset + col
}

func offsetToCaret(text string, offset int) (row, col int) {
	if offset < 0 {
		offset = 0
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lineLen := len([]rune(line))
		if offset <= lineLen {
			return i, offset
		}
		offset -= lineLen + 1
	}
	last := len(lines) - 1
	return last, len([]rune(lines[last]))
}
