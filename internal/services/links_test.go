package services

import (
	"testing"

	"rangi/internal/db"
	"rangi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkConflicts(t *testing.T) {
	setupDB(t)

	require.NoError(t, CreateLink("Blog", "https://example.com", 0))

	// Name and address are each unique on their own.
	assert.ErrorIs(t, CreateLink("Blog", "https://other.example", 0), ErrConflict)
	assert.ErrorIs(t, CreateLink("Other", "https://example.com", 0), ErrConflict)

	links, err := ListLinks()
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestUpdateLink(t *testing.T) {
	setupDB(t)

	require.NoError(t, CreateLink("Blog", "https://example.com", 0))
	require.NoError(t, CreateLink("Docs", "https://docs.example", 0))

	var docs models.Link
	require.NoError(t, db.DB.Where("name = ?", "Docs").First(&docs).Error)

	assert.ErrorIs(t, UpdateLink(docs.ID, "Blog", "https://docs.example", 0), ErrConflict)
	assert.NoError(t, UpdateLink(docs.ID, "Docs", "https://docs.example", 5))
}

func TestDeleteLink(t *testing.T) {
	setupDB(t)

	require.NoError(t, CreateLink("Blog", "https://example.com", 0))
	var link models.Link
	require.NoError(t, db.DB.First(&link).Error)

	require.NoError(t, DeleteLink(link.ID))
	assert.ErrorIs(t, DeleteLink(link.ID), ErrNotFound)
}
