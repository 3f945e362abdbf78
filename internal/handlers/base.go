package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"rangi/internal/config"
	"rangi/internal/middleware"
	"rangi/internal/services"

	"github.com/gin-gonic/gin"
)

// basePath is the URL prefix the blog is mounted under, for deployments
// behind a path-stripping proxy. Empty when served at the root.
var basePath = strings.TrimSuffix(os.Getenv("BASE_PATH"), "/")

// Render injects the variables every page needs (site config, admin
// flag, current path) before handing off to the template.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if site, err := config.Get(); err == nil {
		obj["Site"] = site
	}
	obj["IsAdmin"] = middleware.IsAdmin(c)
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError shows the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// serviceError maps service failures to responses. Referential misses
// answer 400 rather than 404: the ids only ever come from links this
// blog generated, so a miss means a malformed request, not a missing
// page. Conflicts are handled at the call sites because they render as
// soft warnings, not errors.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		RenderError(c, http.StatusBadRequest, "No such record.")
	default:
		log.Printf("Internal error on %s: %v", c.Request.URL.Path, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong.")
	}
}
