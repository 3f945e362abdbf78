package handlers

import (
	"errors"
	"net/http"
	"strings"

	"rangi/internal/services"
	"rangi/internal/utils"

	"github.com/gin-gonic/gin"
)

type LinkHandler struct{}

func NewLinkHandler() *LinkHandler {
	return &LinkHandler{}
}

// Manage renders the blogroll administration page.
func (h *LinkHandler) Manage(c *gin.Context) {
	links, err := services.ListLinks()
	if err != nil {
		serviceError(c, err)
		return
	}
	Render(c, http.StatusOK, "link/manage.html", gin.H{
		"Links": links,
	})
}

// Create adds a blogroll entry. Duplicate names and duplicate addresses
// both come back as a soft warning.
func (h *LinkHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	address := strings.TrimSpace(c.PostForm("address"))
	if name == "" || address == "" {
		RenderError(c, http.StatusBadRequest, "Link name and address are required.")
		return
	}
	err := services.CreateLink(name, address, utils.StringToInt(c.PostForm("order")))
	h.finish(c, err)
}

// Update edits a blogroll entry under the same uniqueness rule.
func (h *LinkHandler) Update(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	address := strings.TrimSpace(c.PostForm("address"))
	if name == "" || address == "" {
		RenderError(c, http.StatusBadRequest, "Link name and address are required.")
		return
	}
	err := services.UpdateLink(
		utils.StringToUint(c.PostForm("id")),
		name,
		address,
		utils.StringToInt(c.PostForm("order")),
	)
	h.finish(c, err)
}

// Delete removes a blogroll entry.
func (h *LinkHandler) Delete(c *gin.Context) {
	err := services.DeleteLink(utils.StringToUint(c.PostForm("id")))
	h.finish(c, err)
}

func (h *LinkHandler) finish(c *gin.Context, err error) {
	if errors.Is(err, services.ErrConflict) {
		links, lerr := services.ListLinks()
		if lerr != nil {
			serviceError(c, lerr)
			return
		}
		Render(c, http.StatusOK, "link/manage.html", gin.H{
			"Links":   links,
			"Warning": "A link with that name or address already exists.",
		})
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/links")
}
