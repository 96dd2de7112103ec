package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc, err := NewDocument("  お願いします\n")
	require.NoError(t, err)
	assert.Equal(t, "お願いします", doc.Text)
	assert.NotEmpty(t, doc.ID)
	assert.False(t, doc.CreatedAt.IsZero())
}

func TestNewDocumentRejectsEmpty(t *testing.T) {
	_, err := NewDocument("   \n\t")
	assert.Error(t, err)
}

func TestNewDocumentIDsAreUnique(t *testing.T) {
	a, err := NewDocument("一")
	require.NoError(t, err)
	b, err := NewDocument("一")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
