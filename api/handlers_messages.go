package api

import (
	"fmt"
	"net/http"

	"github.com/KaustubhAs/student-alumni-connect-app/config"
	"github.com/KaustubhAs/student-alumni-connect-app/db"
	"github.com/KaustubhAs/student-alumni-connect-app/utils"

	"github.com/gin-gonic/gin"
)

// SendMessageRequest is the body of POST /sendMessage. The original contract
// imposes no validation: empty senders, receivers, or content are stored
// as-is, and every call creates a new record.
type SendMessageRequest struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Content  string `json:"content"`
}

// SendMessageResponse confirms a stored message.
type SendMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetMessagesHandler returns the conversation between two users.
// @Summary      Get Messages
// @Description  Returns every message where sender and receiver equal user1 and user2 in either order, in insertion (chronological) order. Clients poll this endpoint; there is no push channel.
// @Tags         Messages
// @Produce      json
// @Param        user1  query  string  true  "One side of the conversation"
// @Param        user2  query  string  true  "Other side of the conversation"
// @Success      200  {array}  models.Message
// @Failure      500  {object}  utils.APIError  "The database could not be read."
// @Router       /getMessages [get]
func GetMessagesHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	user1 := c.Query("user1")
	user2 := c.Query("user2")

	messages, err := database.MessagesBetween(user1, user2)
	if err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to read database: %v", err))
		return
	}

	c.JSON(http.StatusOK, messages)
}

// SendMessageHandler stores a new message.
// @Summary      Send Message
// @Description  Appends a message with a wall-clock-derived id and the current ISO-8601 timestamp, then answers `{"success":true,"message":"Message sent"}`.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        message  body  SendMessageRequest  true  "Sender, receiver, and content"
// @Success      200  {object}  SendMessageResponse
// @Failure      400  {object}  utils.APIError  "Unreadable request body."
// @Failure      500  {object}  utils.APIError  "The database could not be read or written."
// @Router       /sendMessage [post]
func SendMessageHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if _, err := database.SendMessage(req.Sender, req.Receiver, req.Content); err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to update database: %v", err))
		return
	}

	c.JSON(http.StatusOK, SendMessageResponse{Success: true, Message: "Message sent"})
}
