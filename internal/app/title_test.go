package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/session"
)

func TestDocumentDisplayName(t *testing.T) {
	s := session.New()
	// The placeholder document carries no title of its own.
	assert.Empty(t, documentDisplayName(s))

	s.SetContent("<html><head><title>Trip Notes</title></head><body></body></html>")
	assert.Equal(t, "Trip Notes", documentDisplayName(s))

	s.SetContent("<html><body><h1>Draft</h1><p>x</p></body></html>")
	assert.Equal(t, "Draft", documentDisplayName(s))

	// Once bound, the file name wins over the markup title.
	path := filepath.Join(t.TempDir(), "letter.doc")
	require.NoError(t, s.SaveTo(path))
	assert.Equal(t, "letter.doc", documentDisplayName(s))
}
