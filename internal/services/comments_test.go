package services

import (
	"testing"

	"rangi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentApprovalFlow(t *testing.T) {
	setupDB(t)

	post := models.Post{CategoryID: 1, Content: "post"}
	require.NoError(t, CreatePost(&post))

	comment := models.Comment{PostID: post.ID, Content: "waiting"}
	require.NoError(t, CreateComment(&comment, false))
	assert.Equal(t, models.CommentNew, comment.Status)

	// Readers do not see it yet, the admin does.
	visible, err := ListComments(post.ID, false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := ListComments(post.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// The admin listing flips new comments to seen.
	require.NoError(t, MarkCommentsSeen(post.ID))
	all, _ = ListComments(post.ID, true)
	assert.Equal(t, models.CommentSeen, all[0].Status)

	// Approval publishes it.
	require.NoError(t, ApproveComment(comment.ID))
	visible, _ = ListComments(post.ID, false)
	require.Len(t, visible, 1)
	assert.Equal(t, models.CommentApproved, visible[0].Status)
}

func TestCommentAutoApproval(t *testing.T) {
	setupDB(t)

	post := models.Post{CategoryID: 1, Content: "post"}
	require.NoError(t, CreatePost(&post))

	comment := models.Comment{PostID: post.ID, Content: "instant"}
	require.NoError(t, CreateComment(&comment, true))
	assert.Equal(t, models.CommentAutoApproved, comment.Status)

	visible, err := ListComments(post.ID, false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestCommentCounter(t *testing.T) {
	setupDB(t)

	post := models.Post{CategoryID: 1, Content: "post"}
	require.NoError(t, CreatePost(&post))

	first := models.Comment{PostID: post.ID, Content: "one"}
	require.NoError(t, CreateComment(&first, true))
	second := models.Comment{PostID: post.ID, Content: "two"}
	require.NoError(t, CreateComment(&second, true))

	got, err := GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Comments)

	require.NoError(t, DeleteComment(first.ID))
	got, _ = GetPost(post.ID)
	assert.Equal(t, 1, got.Comments)
}

func TestCommentOnDisabledPost(t *testing.T) {
	setupDB(t)

	post := models.Post{CategoryID: 1, Content: "closed", Flags: models.FlagCommentsDisabled}
	require.NoError(t, CreatePost(&post))

	comment := models.Comment{PostID: post.ID, Content: "nope"}
	err := CreateComment(&comment, true)
	assert.ErrorIs(t, err, ErrCommentsDisabled)

	got, _ := GetPost(post.ID)
	assert.Zero(t, got.Comments)
}

func TestCommentOnMissingPost(t *testing.T) {
	setupDB(t)

	comment := models.Comment{PostID: 999, Content: "lost"}
	err := CreateComment(&comment, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPendingComments(t *testing.T) {
	setupDB(t)

	post := models.Post{CategoryID: 1, Content: "post"}
	require.NoError(t, CreatePost(&post))

	require.NoError(t, CreateComment(&models.Comment{PostID: post.ID, Content: "queued"}, false))
	require.NoError(t, CreateComment(&models.Comment{PostID: post.ID, Content: "published"}, true))

	pending, err := PendingComments()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "queued", pending[0].Content)
}
