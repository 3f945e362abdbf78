package handlers

import (
	"net/http"
	"strings"

	"rangi/internal/models"
	"rangi/internal/services"
	"rangi/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// Editor renders the composer, blank for a new post or prefilled when
// ?id= names an existing one.
func (h *PostHandler) Editor(c *gin.Context) {
	data := gin.H{"CurrentCategory": uint(0)}
	if cats, err := services.ListCategories(); err == nil {
		data["Categories"] = cats
	}

	if id := utils.StringToUint(c.Query("id")); id != 0 {
		post, err := services.GetPost(id)
		if err != nil {
			serviceError(c, err)
			return
		}
		data["Post"] = post
		data["CurrentCategory"] = post.CategoryID
	}
	Render(c, http.StatusOK, "post/editor.html", data)
}

// Save creates or updates a post depending on whether the form carries
// an id. Hashtag bookkeeping happens inside the services.
func (h *PostHandler) Save(c *gin.Context) {
	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" {
		RenderError(c, http.StatusBadRequest, "Post content is required.")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	mediaAddr := strings.TrimSpace(c.PostForm("mediaaddr"))
	categoryID := utils.StringToUint(c.PostForm("category"))

	flags := 0
	if c.PostForm("disablecomments") == "Yes" {
		flags |= models.FlagCommentsDisabled
	}
	if c.PostForm("pinned") == "Yes" {
		flags |= models.FlagPinned
	}

	if id := utils.StringToUint(c.PostForm("id")); id != 0 {
		err := services.UpdatePost(id, title, content, mediaAddr, categoryID, flags)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	post := models.Post{
		CategoryID: categoryID,
		Title:      title,
		Content:    content,
		MediaAddr:  mediaAddr,
		Flags:      flags,
	}
	if err := services.CreatePost(&post); err != nil {
		serviceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Delete removes a post with its comments and hashtag bookkeeping.
func (h *PostHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.PostForm("id"))
	if err := services.DeletePost(id); err != nil {
		serviceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
