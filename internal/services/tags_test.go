package services

import (
	"errors"
	"path/filepath"
	"testing"

	"rangi/internal/db"
	"rangi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) {
	t.Helper()
	db.Open(filepath.Join(t.TempDir(), "test.db"))
}

func getTag(t *testing.T, keyword string) (models.Tag, bool) {
	t.Helper()
	var tag models.Tag
	err := db.DB.Where("keyword = ?", keyword).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tag, false
	}
	require.NoError(t, err)
	return tag, true
}

func TestTagLifecycle(t *testing.T) {
	setupDB(t)

	// First use starts the tag at frequency one.
	first := models.Post{CategoryID: 1, Content: "hello #go #web"}
	require.NoError(t, CreatePost(&first))

	tag, ok := getTag(t, "go")
	require.True(t, ok)
	assert.Equal(t, 1, tag.Frequency)
	assert.Equal(t, 0, tag.Popularity)

	// A second post with the same keyword bumps it.
	second := models.Post{CategoryID: 1, Content: "more #go"}
	require.NoError(t, CreatePost(&second))
	tag, _ = getTag(t, "go")
	assert.Equal(t, 2, tag.Frequency)

	// Deleting one post gives the point back.
	require.NoError(t, DeletePost(second.ID))
	tag, _ = getTag(t, "go")
	assert.Equal(t, 1, tag.Frequency)

	// Deleting the last carrier removes the record entirely.
	require.NoError(t, DeletePost(first.ID))
	_, ok = getTag(t, "go")
	assert.False(t, ok)
	_, ok = getTag(t, "web")
	assert.False(t, ok)
}

func TestRepeatedKeywordCountsOnce(t *testing.T) {
	setupDB(t)

	post := models.Post{CategoryID: 1, Content: "#go #go #go"}
	require.NoError(t, CreatePost(&post))

	tag, ok := getTag(t, "go")
	require.True(t, ok)
	assert.Equal(t, 1, tag.Frequency)
}

func TestEditKeepsIndexConsistent(t *testing.T) {
	setupDB(t)

	post := models.Post{CategoryID: 1, Content: "#keep #drop"}
	require.NoError(t, CreatePost(&post))

	err := UpdatePost(post.ID, "", "#keep #add", "", 1, 0)
	require.NoError(t, err)

	// A keyword kept across the edit nets out unchanged.
	tag, ok := getTag(t, "keep")
	require.True(t, ok)
	assert.Equal(t, 1, tag.Frequency)

	_, ok = getTag(t, "drop")
	assert.False(t, ok)

	tag, ok = getTag(t, "add")
	require.True(t, ok)
	assert.Equal(t, 1, tag.Frequency)
}

func TestBumpPopularity(t *testing.T) {
	setupDB(t)

	post := models.Post{CategoryID: 1, Content: "#hot"}
	require.NoError(t, CreatePost(&post))

	BumpPopularity("hot")
	BumpPopularity("hot")
	tag, _ := getTag(t, "hot")
	assert.Equal(t, 2, tag.Popularity)

	// Unknown keywords are a silent no-op.
	BumpPopularity("missing")
	_, ok := getTag(t, "missing")
	assert.False(t, ok)
}

func TestPopularitySurvivesEdits(t *testing.T) {
	setupDB(t)

	post := models.Post{CategoryID: 1, Content: "#go"}
	require.NoError(t, CreatePost(&post))
	BumpPopularity("go")

	require.NoError(t, UpdatePost(post.ID, "", "still about #go", "", 1, 0))
	tag, _ := getTag(t, "go")
	assert.Equal(t, 1, tag.Popularity)
}

func TestTopRankings(t *testing.T) {
	setupDB(t)

	require.NoError(t, CreatePost(&models.Post{CategoryID: 1, Content: "#a #b #c"}))
	require.NoError(t, CreatePost(&models.Post{CategoryID: 1, Content: "#a #b"}))
	require.NoError(t, CreatePost(&models.Post{CategoryID: 1, Content: "#a"}))
	BumpPopularity("c")

	byFreq := TopByFrequency(2)
	require.Len(t, byFreq, 2)
	assert.Equal(t, "a", byFreq[0].Keyword)
	assert.Equal(t, "b", byFreq[1].Keyword)

	byPop := TopByPopularity(1)
	require.Len(t, byPop, 1)
	assert.Equal(t, "c", byPop[0].Keyword)
}
