package handlers

import (
	"html/template"
	"net/http"

	"rangi/internal/config"
	"rangi/internal/middleware"
	"rangi/internal/models"
	"rangi/internal/services"
	"rangi/internal/utils"

	"github.com/gin-gonic/gin"
)

// sidebarTagCount is how many tags each of the two sidebar rankings shows.
const sidebarTagCount = 4

type FeedHandler struct{}

func NewFeedHandler() *FeedHandler {
	return &FeedHandler{}
}

// postView pairs a post with its display-ready content and date.
type postView struct {
	models.Post
	Rendered template.HTML
	Date     string
}

func newPostView(post models.Post, site *config.Site, excerpt bool) (postView, error) {
	v := postView{Post: post}
	if excerpt {
		v.Rendered = utils.RenderExcerpt(post.Content, basePath, post.ID)
	} else {
		v.Rendered = utils.RenderContent(post.Content, basePath)
	}
	date, err := utils.FormatDatetime(post.Datetime, site.DTFormat, site.Calendar)
	if err != nil {
		return postView{}, err
	}
	v.Date = date
	return v, nil
}

// Index renders the feed shell: filters, sidebar, and the scroll anchor
// the paged fragments attach to. On a fresh deployment it runs the
// installation instead. Visiting a ?tag= link counts as one click on
// that tag's popularity.
func (h *FeedHandler) Index(c *gin.Context) {
	if !config.Installed() {
		h.install(c)
		return
	}

	if tag := c.Query("tag"); tag != "" {
		services.BumpPopularity(tag)
	}

	data := gin.H{
		"Category": c.Query("category"),
		"Tag":      c.Query("tag"),
		"Search":   c.Query("search"),
		"Sort":     c.Query("sort"),
	}
	h.addSidebar(data)
	Render(c, http.StatusOK, "feed/index.html", data)
}

// install writes the default configuration and hands the installing
// session the admin flag so the settings page opens unlocked.
func (h *FeedHandler) install(c *gin.Context) {
	config.Reset()
	if _, err := config.Install(); err != nil {
		serviceError(c, err)
		return
	}
	if err := middleware.Grant(c); err != nil {
		serviceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/config")
}

// Page serves one feed fragment for the infinite scroll. When the
// requested page is past the end it answers the plain sentinel "END."
// so the client knows to stop asking.
func (h *FeedHandler) Page(c *gin.Context) {
	site, err := config.Get()
	if err != nil {
		serviceError(c, err)
		return
	}

	page := utils.StringToInt(c.Query("page"))
	if page < 0 {
		page = 0
	}
	filter := services.PostFilter{
		CategoryID: utils.StringToUint(c.Query("category")),
		Tag:        c.Query("tag"),
		Search:     c.Query("search"),
		Sort:       c.Query("sort"),
	}

	posts, err := services.FindPosts(filter, page*site.PPP, site.PPP)
	if err != nil {
		serviceError(c, err)
		return
	}
	if len(posts) == 0 {
		c.String(http.StatusOK, "END.")
		return
	}

	views := make([]postView, 0, len(posts))
	for _, post := range posts {
		view, err := newPostView(post, site, true)
		if err != nil {
			serviceError(c, err)
			return
		}
		views = append(views, view)
	}
	Render(c, http.StatusOK, "feed/page.html", gin.H{"Posts": views})
}

// Show renders a single post with its comment thread.
func (h *FeedHandler) Show(c *gin.Context) {
	site, err := config.Get()
	if err != nil {
		serviceError(c, err)
		return
	}

	post, err := services.GetPost(utils.StringToUint(c.Query("id")))
	if err != nil {
		serviceError(c, err)
		return
	}

	admin := middleware.IsAdmin(c)
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

	data := gin.H{
		"Post":     view,
		"Comments": cviews,
	}
	h.addSidebar(data)
	Render(c, http.StatusOK, "feed/show.html", data)
}

// Share renders the minimal share page for one post.
func (h *FeedHandler) Share(c *gin.Context) {
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
	view, err := newPostView(*post, site, false)
	if err != nil {
		serviceError(c, err)
		return
	}
	Render(c, http.StatusOK, "feed/share.html", gin.H{"Post": view})
}

func (h *FeedHandler) addSidebar(data gin.H) {
	if cats, err := services.ListCategories(); err == nil {
		data["Categories"] = cats
	}
	if links, err := services.ListLinks(); err == nil {
		data["Links"] = links
	}
	data["PopularTags"] = services.TopByPopularity(sidebarTagCount)
	data["FrequentTags"] = services.TopByFrequency(sidebarTagCount)
}
