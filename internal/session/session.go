package session

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"inkwell/internal/markup"
)

var (
	// ErrNoPath is returned by Save on a session that has never been
	// bound to a file.
	ErrNoPath = errors.New("session: no file path bound")

	// ErrInvalidOffset is returned when an insertion offset falls
	// outside the current content.
	ErrInvalidOffset = errors.New("session: insertion offset out of range")

	// ErrBadFragment is returned when an inserted fragment is rejected
	// by the markup parser.
	ErrBadFragment = errors.New("session: fragment is not valid markup")
)

// Session is the document being edited: its raw markup content and the
// file path it is bound to, if any. All methods are synchronous and are
// only ever called from the UI thread.
//
// Edits are not dirty-tracked: Reset and process exit discard unsaved
// changes without warning.
type Session struct {
	content string
	path    string
}

// New returns an unbound session holding the placeholder document.
func New() *Session {
	return &Session{content: markup.DefaultDocument}
}

func (s *Session) Content() string { return s.content }

// Path returns the file the session is bound to, empty when unbound.
func (s *Session) Path() string { return s.path }

func (s *Session) Bound() bool { return s.path != "" }

// SetContent replaces the content wholesale. Editing never touches the
// bound path.
func (s *Session) SetContent(content string) { s.content = content }

// Reset returns the session to a fresh unbound placeholder document.
func (s *Session) Reset() {
	s.content = markup.DefaultDocument
	s.path = ""
}

// Open reads the whole file at path, re-joining its lines with a
// trailing newline each, and replaces the content wholesale. On failure
// both content and path are left untouched.
func (s *Session) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var sb strings.Builder
	sb.Grow(len(data) + len(lines))
	for _, line := range lines {
		sb.WriteString(strings.TrimSuffix(line, "\r"))
		sb.WriteByte('\n')
	}

	s.content = sb.String()
	s.path = path
	return nil
}

// SaveTo binds the session to path, normalized via EnsureExtension, and
// writes the content there. The binding survives a failed write; there
// is no rollback.
func (s *Session) SaveTo(path string) error {
	s.path = EnsureExtension(path)
	return s.Save()
}

// Save overwrites the bound file with the current content in a single
// write. No temp file, no atomic rename: a crash mid-write can leave a
// truncated file.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	return os.WriteFile(s.path, []byte(s.content), 0o644)
}

// EnsureExtension appends ".doc" unless name already carries a
// recognized document extension, case-insensitively.
func EnsureExtension(name string) string {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".doc") || strings.HasSuffix(lower, ".html") {
		return name
	}
	return name + ".doc"
}

// InsertFragment inserts a markup fragment at the given rune offset.
// The fragment must be accepted by the markup parser; on any failure
// the content is left untouched.
func (s *Session) InsertFragment(fragment string, offset int) error {
	runes := []rune(s.content)
	if offset < 0 || offset > len(runes) {
		return fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}
	if err := markup.ParseFragment(fragment); err != nil {
		return fmt.Errorf("%w: %v", ErrBadFragment, err)
	}
	s.content = string(runes[:offset]) + fragment + string(runes[offset:])
	return nil
}

// InsertHeading inserts the heading fragment at the given rune offset.
func (s *Session) InsertHeading(offset int) error {
	return s.InsertFragment(markup.HeadingFragment, offset)
}

// InsertLink inserts an anchor at the given rune offset. A blank URL
// aborts without touching the content; blank display text falls back to
// the URL.
func (s *Session) InsertLink(url, text string, offset int) error {
	if strings.TrimSpace(url) == "" {
		return nil
	}
	return s.InsertFragment(markup.LinkFragment(url, text), offset)
}
