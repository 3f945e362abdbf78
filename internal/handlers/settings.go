package handlers

import (
	"net/http"
	"strings"

	"rangi/internal/config"
	"rangi/internal/utils"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct{}

func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

// Show renders the settings form with the current values filled in.
func (h *SettingsHandler) Show(c *gin.Context) {
	Render(c, http.StatusOK, "settings/edit.html", nil)
}

// Save rewrites the whole configuration from the form. Every change
// must be countersigned with the current password; a wrong one answers
// 401 and leaves the file untouched. A new password is only set when
// the field is non-empty.
func (h *SettingsHandler) Save(c *gin.Context) {
	site, err := config.Get()
	if err != nil {
		serviceError(c, err)
		return
	}
	if !utils.CheckPassword(site.PwdHash, c.PostForm("currpwd")) {
		Render(c, http.StatusUnauthorized, "settings/edit.html", gin.H{
			"Warning": "Wrong password, nothing saved.",
		})
		return
	}

	ppp := utils.StringToInt(c.PostForm("ppp"))
	if ppp <= 0 {
		RenderError(c, http.StatusBadRequest, "Posts per page must be a positive number.")
		return
	}
	calendar := c.PostForm("calendar")
	if calendar != utils.CalendarJalali && calendar != utils.CalendarGregorian {
		RenderError(c, http.StatusBadRequest, "Unknown calendar.")
		return
	}

	updated := &config.Site{
		Title:           strings.TrimSpace(c.PostForm("title")),
		Desc:            strings.TrimSpace(c.PostForm("desc")),
		DispName:        strings.TrimSpace(c.PostForm("dispname")),
		MailAddr:        strings.TrimSpace(c.PostForm("mailaddr")),
		PPP:             ppp,
		DTFormat:        c.PostForm("dtformat"),
		Calendar:        calendar,
		AutoApproval:    c.PostForm("autoapproval") == "Yes",
		DisableComments: c.PostForm("disablecomments") == "Yes",
		PwdHash:         site.PwdHash,
	}
	if newPwd := c.PostForm("newpwd"); newPwd != "" {
		hash, err := utils.HashPassword(newPwd)
		if err != nil {
			serviceError(c, err)
			return
		}
		updated.PwdHash = hash
	}

	if err := config.Save(updated); err != nil {
		serviceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
