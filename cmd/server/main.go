package main

import (
	"html/template"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"rangi/internal/db"
	"rangi/internal/middleware"
	"rangi/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions. SameSite=Lax keeps cross-site form posts from
	// riding the admin cookie.
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("rangi_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadAdmin())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Blog server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"urlquery": func(s string) string {
			return url.QueryEscape(s)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	// Manual registration to ensure keys match handler expectation
	// Feed
	r.AddFromFilesFuncs("feed/index.html", funcMap, assemble(templatesDir+"/views/feed/index.html")...)
	r.AddFromFilesFuncs("feed/show.html", funcMap, assemble(templatesDir+"/views/feed/show.html")...)
	r.AddFromFilesFuncs("feed/share.html", funcMap, assemble(templatesDir+"/views/feed/share.html")...)
	// page.html is a bare fragment for the infinite scroll, no layout
	r.AddFromFilesFuncs("feed/page.html", funcMap, templatesDir+"/views/feed/page.html")

	// Comments
	r.AddFromFilesFuncs("comment/list.html", funcMap, assemble(templatesDir+"/views/comment/list.html")...)
	r.AddFromFilesFuncs("comment/moderation.html", funcMap, assemble(templatesDir+"/views/comment/moderation.html")...)

	// Admin
	r.AddFromFilesFuncs("post/editor.html", funcMap, assemble(templatesDir+"/views/post/editor.html")...)
	r.AddFromFilesFuncs("category/manage.html", funcMap, assemble(templatesDir+"/views/category/manage.html")...)
	r.AddFromFilesFuncs("link/manage.html", funcMap, assemble(templatesDir+"/views/link/manage.html")...)
	r.AddFromFilesFuncs("settings/edit.html", funcMap, assemble(templatesDir+"/views/settings/edit.html")...)

	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
