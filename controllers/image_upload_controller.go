package controllers

import (
	"fmt"
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageInput struct {
	Image string `json:"image" binding:"required"` // base64, optionally a data URL
}

// UploadProfileImage stores the image in S3 and saves the resulting URL on
// the user's profile.
func UploadProfileImage(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input UploadImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := utils.UploadBase64ImageToS3(input.Image, "profile-images", fmt.Sprintf("user-%d", userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	user, err := services.SetProfileImage(userID, url)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": user.ImageURL})
}
