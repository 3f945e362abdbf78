package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AdminKey is the gin context key carrying the admin flag for the
// current request. SessionKey is the session entry behind it.
const (
	AdminKey   = "is_admin"
	SessionKey = "logged_in"
)

// LoadAdmin reads the session once per request and publishes the admin
// flag to the context, so handlers and templates never touch the
// session directly.
func LoadAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		logged, _ := session.Get(SessionKey).(bool)
		c.Set(AdminKey, logged)
		c.Next()
	}
}

// AdminRequired rejects requests without the admin session flag. The
// blog has exactly one author, so there is nothing finer-grained than
// admin or not.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// IsAdmin reports whether the current request carries the admin flag.
func IsAdmin(c *gin.Context) bool {
	admin, _ := c.Get(AdminKey)
	flag, _ := admin.(bool)
	return flag
}

// Grant marks the current session as the admin's.
func Grant(c *gin.Context) error {
	session := sessions.Default(c)
	session.Set(SessionKey, true)
	if err := session.Save(); err != nil {
		return err
	}
	c.Set(AdminKey, true)
	return nil
}

// Revoke clears the admin flag from the session.
func Revoke(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(SessionKey)
	if err := session.Save(); err != nil {
		return err
	}
	c.Set(AdminKey, false)
	return nil
}
