package controllers

import (
	"net/http"

	"backend/pkg/logger"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type AIController struct {
	AI  *services.GeminiService
	Hub *services.ChatHub
	Log *logger.Logger

	upgrader websocket.Upgrader
}

func NewAIController(ai *services.GeminiService, hub *services.ChatHub, log *logger.Logger) *AIController {
	return &AIController{
		AI:  ai,
		Hub: hub,
		Log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type chatFrame struct {
	Message string `json:"message"`
}

type chatReply struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// Chat upgrades the request to a websocket and relays each frame through
// the AI with the user's running conversation history.
func (ai *AIController) Chat(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := ai.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		ai.Log.Warnw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		var frame chatFrame
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}
		if frame.Message == "" {
			_ = conn.WriteJSON(chatReply{Error: "message is required"})
			continue
		}

		history := ai.Hub.History(userID)
		reply, err := ai.AI.Chat(c.Request.Context(), history, frame.Message)
		if err != nil {
			ai.Log.Warnw("chat reply failed", "userID", userID, "error", err)
			_ = conn.WriteJSON(chatReply{Error: "ai service unavailable"})
			continue
		}

		ai.Hub.Append(userID, "user", frame.Message)
		ai.Hub.Append(userID, "assistant", reply)
		if err := conn.WriteJSON(chatReply{Reply: reply}); err != nil {
			return
		}
	}
}

func (ai *AIController) ResetChat(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ai.Hub.Reset(userID)
	c.JSON(http.StatusOK, gin.H{"message": "chat history cleared"})
}

func (ai *AIController) GenerateMealPlan(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goal, err := services.CurrentGoal(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	user, err := services.GetProfile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	plan, err := ai.AI.GenerateMealPlan(c.Request.Context(), goal, user.HealthProfile)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPlan": plan})
}
