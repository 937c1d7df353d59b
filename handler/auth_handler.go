package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"notebuddy/config"
	"notebuddy/utils"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthHandler struct {
	Admin config.AdminConfig
}

func NewAuthHandler(admin config.AdminConfig) *AuthHandler {
	return &AuthHandler{Admin: admin}
}

// Login checks the static admin credentials and hands out the static admin
// token. POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation")
		utils.TrackAuthAttempt("failure", "login")
		utils.BadRequest(c, err.Error())
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.Admin.Username))
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.Admin.Password))
	if userOK&passOK != 1 {
		utils.TrackAuthAttempt("failure", "login")
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	c.JSON(http.StatusOK, gin.H{
		"token": h.Admin.Token,
		"user":  gin.H{"name": "Admin", "role": "admin"},
	})
}
