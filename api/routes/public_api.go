package routes

import (
	"board/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func PublicApi(router *gin.Engine, verification *handlers.VerificationHandler, posts *handlers.PostHandler, uploadsDir string) {
	router.POST("/send_code", verification.SendCode)
	router.POST("/verify_code", verification.VerifyCode)
	router.POST("/user_post", posts.CreatePost)
	router.GET("/posts", posts.ListPosts)

	// Загруженные изображения отдаются как статика по ключу хранения
	router.Static("/uploads_img", uploadsDir)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
