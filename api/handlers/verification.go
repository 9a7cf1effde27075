package handlers

import (
	"net/http"
	"strconv"

	"board/api/middleware"
	"board/services"

	"github.com/gin-gonic/gin"
)

type SendCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

type VerifyCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type VerificationHandler struct {
	verification *services.VerificationService
}

func NewVerificationHandler(verification *services.VerificationService) *VerificationHandler {
	return &VerificationHandler{verification: verification}
}

// SendCode выдает новый код подтверждения для номера телефона
func (h *VerificationHandler) SendCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request"})
		return
	}

	if _, err := h.verification.IssueCode(c.Request.Context(), req.Phone, req.Name); err != nil {
		middleware.RecordVerification("issue", "error")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	middleware.RecordVerification("issue", "ok")
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// VerifyCode сверяет присланный код с последним выданным для номера
func (h *VerificationHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request"})
		return
	}

	code, err := strconv.Atoi(req.Code)
	if err != nil {
		middleware.RecordVerification("check", "bad_input")
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Code must be numeric"})
		return
	}

	err = h.verification.CheckCode(c.Request.Context(), req.Phone, code)
	switch err {
	case nil:
		middleware.RecordVerification("check", "ok")
		c.JSON(http.StatusOK, gin.H{"message": "Code verified successfully"})
	case services.ErrPhoneNotFound:
		middleware.RecordVerification("check", "not_found")
		c.JSON(http.StatusNotFound, gin.H{"detail": "Phone not found"})
	case services.ErrCodeMismatch:
		middleware.RecordVerification("check", "mismatch")
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid code"})
	default:
		middleware.RecordVerification("check", "error")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
