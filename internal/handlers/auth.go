package handlers

import (
	"net/http"

	"rangi/internal/config"
	"rangi/internal/middleware"
	"rangi/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// ShowLogin renders the password prompt.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if middleware.IsAdmin(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	Render(c, http.StatusOK, "auth/login.html", nil)
}

// Login checks the admin password and grants the session flag. The
// route sits behind the login rate limiter; a wrong password answers
// 401 so failed attempts are visible in access logs.
func (h *AuthHandler) Login(c *gin.Context) {
	site, err := config.Get()
	if err != nil {
		serviceError(c, err)
		return
	}
	if !utils.CheckPassword(site.PwdHash, c.PostForm("pwd")) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Warning": "Wrong password.",
		})
		return
	}
	if err := middleware.Grant(c); err != nil {
		serviceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout drops the admin flag.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.Revoke(c); err != nil {
		serviceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
