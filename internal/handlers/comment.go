package handlers

import (
	"errors"
	"net/http"
	"strings"

	"rangi/internal/config"
	"rangi/internal/middleware"
	"rangi/internal/models"
	"rangi/internal/services"
	"rangi/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// commentView pairs a comment with its formatted date.
type commentView struct {
	models.Comment
	Date string
}

func commentViews(comments []models.Comment, site *config.Site) ([]commentView, error) {
	views := make([]commentView, 0, len(comments))
	for _, comment := range comments {
		date, err := utils.FormatDatetime(comment.Datetime, site.DTFormat, site.Calendar)
		if err != nil {
			return nil, err
		}
		views = append(views, commentView{Comment: comment, Date: date})
	}
	return views, nil
}

// List shows a post's comment thread with the submission form. The
// admin sees unapproved comments too, and opening the thread marks
// fresh ones as seen.
func (h *CommentHandler) List(c *gin.Context) {
	site, err := config.Get()
	if err != nil {
		serviceError(c, err)
		return
	}
	post, err := services.GetPost(utils.StringToUint(c.Query("postid")))
	if err != nil {
		serviceError(c, err)
		return
	}

	admin := middleware.IsAdmin(c)
	if admin {
		if err := services.MarkCommentsSeen(post.ID); err != nil {
			serviceError(c, err)
			return
		}
	}
	comments, err := services.ListComments(post.ID, admin)
	if err != nil {
		serviceError(c, err)
		return
	}

	view, err := newPostView(*post, site, false)
	if err != nil {
		serviceError(c, err)
		return
	}
	cviews, err := commentViews(comments, site)
	if err != nil {
		serviceError(c, err)
		return
	}

	Render(c, http.StatusOK, "comment/list.html", gin.H{
		"Post":     view,
		"Comments": cviews,
		"Disabled": site.DisableComments || post.CommentsDisabled(),
	})
}

// Create accepts a reader comment. The blog-wide switch and the
// per-post flag both close the form; auto-approval decides whether the
// comment is published immediately or queued.
func (h *CommentHandler) Create(c *gin.Context) {
	site, err := config.Get()
	if err != nil {
		serviceError(c, err)
		return
	}
	postID := utils.StringToUint(c.PostForm("postid"))
	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" {
		RenderError(c, http.StatusBadRequest, "Comment content is required.")
		return
	}
	if site.DisableComments {
		RenderError(c, http.StatusBadRequest, "Comments are disabled.")
		return
	}

	comment := models.Comment{
		PostID:    postID,
		Content:   content,
		Name:      strings.TrimSpace(c.PostForm("name")),
		Website:   strings.TrimSpace(c.PostForm("website")),
		EmailAddr: strings.TrimSpace(c.PostForm("emailaddr")),
	}
	if comment.Name == "" {
		comment.Name = "Anonymous"
	}

	err = services.CreateComment(&comment, site.AutoApproval)
	if errors.Is(err, services.ErrCommentsDisabled) {
		RenderError(c, http.StatusBadRequest, "Comments are disabled on this post.")
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/comments?postid="+c.PostForm("postid"))
}

// Approve publishes a queued comment. Admin only.
func (h *CommentHandler) Approve(c *gin.Context) {
	id := utils.StringToUint(c.PostForm("commentid"))
	if err := services.ApproveComment(id); err != nil {
		serviceError(c, err)
		return
	}
	back(c, "/commentmoderation")
}

// Delete removes a comment and its counter point. Admin only.
func (h *CommentHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.PostForm("commentid"))
	if err := services.DeleteComment(id); err != nil {
		serviceError(c, err)
		return
	}
	back(c, "/")
}

// Moderation lists every comment still waiting for a decision.
func (h *CommentHandler) Moderation(c *gin.Context) {
	site, err := config.Get()
	if err != nil {
		serviceError(c, err)
		return
	}
	pending, err := services.PendingComments()
	if err != nil {
		serviceError(c, err)
		return
	}
	cviews, err := commentViews(pending, site)
	if err != nil {
		serviceError(c, err)
		return
	}
	Render(c, http.StatusOK, "comment/moderation.html", gin.H{
		"Comments": cviews,
	})
}

// back redirects to the referring page, or to fallback when the
// request came without one.
func back(c *gin.Context, fallback string) {
	target := c.Request.Referer()
	if target == "" {
		target = fallback
	}
	c.Redirect(http.StatusFound, target)
}
