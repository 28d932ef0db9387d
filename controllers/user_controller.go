package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := services.GetProfile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{"user": user}
	if p := user.HealthProfile; p != nil && p.HeightCm > 0 && p.CurrentWeightKg > 0 {
		if bmi, err := utils.CalculateBMI(p.HeightCm, p.CurrentWeightKg); err == nil {
			resp["bmi"] = bmi
			resp["bmi_category"] = utils.BMICategory(bmi)
		}
	}
	c.JSON(http.StatusOK, resp)
}

type UpdateProfileInput struct {
	FullName        string `json:"full_name"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateProfile(userID, input.FullName, input.CurrentPassword, input.NewPassword)
	if err != nil {
		if err.Error() == "current password is incorrect" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{"id": user.ID, "email": user.Email, "full_name": user.FullName},
	})
}

func UpdateHealthProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.HealthProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpsertHealthProfile(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"health_profile": profile})
}
