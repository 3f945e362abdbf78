package router

import (
	"rangi/internal/handlers"
	"rangi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	feedHandler := handlers.NewFeedHandler()
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	categoryHandler := handlers.NewCategoryHandler()
	linkHandler := handlers.NewLinkHandler()
	authHandler := handlers.NewAuthHandler()
	settingsHandler := handlers.NewSettingsHandler()

	// Reader routes
	r.GET("/", feedHandler.Index)
	r.GET("/page", middleware.RateLimit("feed", middleware.FeedWindows), feedHandler.Page)
	r.GET("/show", feedHandler.Show)
	r.GET("/share", feedHandler.Share)
	r.GET("/comments", commentHandler.List)
	r.POST("/comments", commentHandler.Create)

	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", middleware.RateLimit("login", middleware.LoginWindows), authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Admin routes
	admin := r.Group("/")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/post", postHandler.Editor)
		admin.POST("/post", postHandler.Save)
		admin.POST("/deletepost", postHandler.Delete)

		admin.GET("/commentmoderation", commentHandler.Moderation)
		admin.POST("/approvecomment", commentHandler.Approve)
		admin.POST("/deletecomment", commentHandler.Delete)

		admin.GET("/categories", categoryHandler.Manage)
		admin.POST("/newcategory", categoryHandler.Create)
		admin.POST("/editcategory", categoryHandler.Update)
		admin.POST("/removecategory", categoryHandler.Delete)

		admin.GET("/links", linkHandler.Manage)
		admin.POST("/addlink", linkHandler.Create)
		admin.POST("/editlink", linkHandler.Update)
		admin.POST("/removelink", linkHandler.Delete)

		admin.GET("/config", settingsHandler.Show)
		admin.POST("/config", settingsHandler.Save)
	}
}
