package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func goalIndexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal index"})
		return 0, false
	}
	return index, true
}

func goalListResponse(c *gin.Context, status int, goals any, currentIndex *int) {
	c.JSON(status, gin.H{"goals": goals, "current_goal_index": currentIndex})
}

func GetGoals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goals, currentIndex, err := services.GetGoals(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	goalListResponse(c, http.StatusOK, goals, currentIndex)
}

func CreateGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.CreateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, currentIndex, err := services.CreateGoal(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	goalListResponse(c, http.StatusCreated, goals, currentIndex)
}

func UpdateGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	index, ok := goalIndexParam(c)
	if !ok {
		return
	}

	var input services.UpdateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, currentIndex, err := services.UpdateGoal(userID, index, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	goalListResponse(c, http.StatusOK, goals, currentIndex)
}

func DeleteGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	index, ok := goalIndexParam(c)
	if !ok {
		return
	}

	goals, currentIndex, err := services.DeleteGoal(userID, index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	goalListResponse(c, http.StatusOK, goals, currentIndex)
}

type SetCurrentGoalInput struct {
	Index *int `json:"index" binding:"required"`
}

func SetCurrentGoal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input SetCurrentGoalInput
	if err := c.ShouldBindJSON(&input); err != nil || *input.Index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal index"})
		return
	}

	goals, currentIndex, err := services.SetCurrentGoal(userID, *input.Index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	goalListResponse(c, http.StatusOK, goals, currentIndex)
}
