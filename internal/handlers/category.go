package handlers

import (
	"errors"
	"net/http"
	"strings"

	"rangi/internal/services"
	"rangi/internal/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// Manage renders the category administration page.
func (h *CategoryHandler) Manage(c *gin.Context) {
	cats, err := services.ListCategories()
	if err != nil {
		serviceError(c, err)
		return
	}
	Render(c, http.StatusOK, "category/manage.html", gin.H{
		"Categories": cats,
	})
}

// Create adds a category. A duplicate name comes back as a warning on
// the management page rather than an error status.
func (h *CategoryHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		RenderError(c, http.StatusBadRequest, "Category name is required.")
		return
	}
	err := services.CreateCategory(name, utils.StringToInt(c.PostForm("order")))
	h.finish(c, err, "A category with that name already exists.")
}

// Update renames or reorders a category.
func (h *CategoryHandler) Update(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		RenderError(c, http.StatusBadRequest, "Category name is required.")
		return
	}
	err := services.UpdateCategory(
		utils.StringToUint(c.PostForm("id")),
		name,
		utils.StringToInt(c.PostForm("order")),
	)
	h.finish(c, err, "A category with that name already exists.")
}

// Delete removes a category and everything filed under it.
func (h *CategoryHandler) Delete(c *gin.Context) {
	err := services.DeleteCategory(utils.StringToUint(c.PostForm("id")))
	h.finish(c, err, "")
}

// finish answers a category mutation. Conflicts are not failures: the
// management page comes back with a warning and a 200, the write
// simply skipped.
func (h *CategoryHandler) finish(c *gin.Context, err error, warning string) {
	if errors.Is(err, services.ErrConflict) {
		cats, lerr := services.ListCategories()
		if lerr != nil {
			serviceError(c, lerr)
			return
		}
		Render(c, http.StatusOK, "category/manage.html", gin.H{
			"Categories": cats,
			"Warning":    warning,
		})
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/categories")
}
