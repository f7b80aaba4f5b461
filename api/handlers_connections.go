package api

import (
	"fmt"
	"net/http"

	"github.com/KaustubhAs/student-alumni-connect-app/config"
	"github.com/KaustubhAs/student-alumni-connect-app/db"
	"github.com/KaustubhAs/student-alumni-connect-app/utils"

	"github.com/gin-gonic/gin"
)

// ConnectionInsertRequest is the body of POST /connectionInsert. Neither
// field is required by the original contract: absent fields arrive as empty
// strings and fall into the self-connection rejection.
type ConnectionInsertRequest struct {
	NameOne string `json:"NameOne"`
	NameTwo string `json:"NameTwo"`
}

// GetAllConnectionHandler returns every connection record.
// @Summary      Get All Connections
// @Description  Returns the full sequence of follow edges in insertion order. NameOne is the follower, NameTwo the followed.
// @Tags         Connections
// @Produce      json
// @Success      200  {array}  models.Connection
// @Failure      500  {object}  utils.APIError  "The database could not be read."
// @Router       /getAllConnection [get]
func GetAllConnectionHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	connections, err := database.AllConnections()
	if err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to read database: %v", err))
		return
	}

	c.JSON(http.StatusOK, connections)
}

// ConnectionInsertHandler creates a follow edge NameOne -> NameTwo.
// @Summary      Create Connection
// @Description  Appends a directed follow edge. A self-connection answers `{"success":false,"message":"Cannot connect to yourself"}`; an existing identical pair answers `{"success":true,"message":"Already connected"}` without inserting; otherwise the edge is stored with the next ConnectionID and the response is `{"success":true,"message":"Connected"}`. All three outcomes are 200.
// @Tags         Connections
// @Accept       json
// @Produce      json
// @Param        connection  body  ConnectionInsertRequest  true  "Follower (NameOne) and followed (NameTwo)"
// @Success      200  {object}  db.InsertConnectionResult
// @Failure      400  {object}  utils.APIError  "Unreadable request body."
// @Failure      500  {object}  utils.APIError  "The database could not be read or written."
// @Router       /connectionInsert [post]
func ConnectionInsertHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req ConnectionInsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	result, err := database.InsertConnection(req.NameOne, req.NameTwo)
	if err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to update database: %v", err))
		return
	}

	c.JSON(http.StatusOK, result)
}
