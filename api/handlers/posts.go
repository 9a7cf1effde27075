package handlers

import (
	"net/http"
	"path/filepath"

	"board/api/middleware"
	"board/models"
	"board/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// CreatePost принимает multipart-форму с полями имени, телефоном и файлом
func (h *PostHandler) CreatePost(c *gin.Context) {
	firstName := c.PostForm("first_name")
	secondName := c.PostForm("second_name")
	thirdName := c.PostForm("third_name")
	phone := c.PostForm("phone")

	if firstName == "" || secondName == "" || thirdName == "" || phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing required form fields"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "File is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.RecordUpload("error")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	post := &models.Post{
		FirstName:  firstName,
		SecondName: secondName,
		ThirdName:  thirdName,
		Phone:      phone,
		// Оригинальное имя остается только метаданными, путь из него не строится
		ImageName: filepath.Base(fileHeader.Filename),
	}

	if err := h.posts.CreatePost(c.Request.Context(), post, file); err != nil {
		middleware.RecordUpload("error")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to save post"})
		return
	}

	middleware.RecordUpload("ok")
	c.JSON(http.StatusOK, gin.H{"message": "Post uploaded successfully"})
}

// ListPosts возвращает все посты. Пустая база - это пустой список, а не ошибка.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, models.PostsResponse{Posts: posts})
}
