package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/KaustubhAs/student-alumni-connect-app/config"
	"github.com/KaustubhAs/student-alumni-connect-app/db"
	"github.com/KaustubhAs/student-alumni-connect-app/utils"

	"github.com/gin-gonic/gin"
)

// GetAllProfilesHandler returns the profile directory.
// @Summary      Get All Profiles
// @Description  Returns every profile with a computed FullName field. Without parameters the response is the full directory.
// @Description
// @Description  Optional `content_query` parameters filter the directory. Each condition is a string of the form `path operator value`, where `path` addresses a field of the profile response JSON (e.g. `JobTitle`, `Mentoring`, `FullName`) and `operator` is one of equals, notequals, contains, startswith, endswith (each also with an `-insensitive` suffix) or the numeric comparisons. Conditions alternate with explicit `and`/`or` parts:
// @Description  `?content_query=Mentoring equals "Mentor"&content_query=and&content_query=JobTitle contains-insensitive "engineer"`
// @Tags         Profiles
// @Produce      json
// @Param        content_query  query  []string  false  "Filter conditions alternating with and/or"  collectionFormat(multi)
// @Success      200  {array}  models.ProfileView
// @Failure      400  {object}  utils.APIError  "Malformed content_query."
// @Failure      500  {object}  utils.APIError  "The database could not be read."
// @Router       /getAllProfiles [get]
func GetAllProfilesHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	contentQuery := c.QueryArray("content_query")

	profiles, err := database.SearchProfiles(contentQuery)
	if err != nil {
		if errors.Is(err, db.ErrInvalidQuery) {
			utils.GinBadRequest(c, fmt.Sprintf("Invalid content_query: %v", err))
			return
		}
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to read database: %v", err))
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetProfileByUserNameHandler looks up a single profile by exact username.
// @Summary      Get Profile By Username
// @Description  Case-sensitive exact match on UserName. Returns a 1-element array with the matched profile (FullName computed), or an empty array if none match. The array shape is a compatibility contract with the original consumer.
// @Tags         Profiles
// @Produce      json
// @Param        UserName  query  string  true  "Username (case-sensitive)"
// @Success      200  {array}  models.ProfileView
// @Failure      500  {object}  utils.APIError  "The database could not be read."
// @Router       /getProfileByUserName [get]
func GetProfileByUserNameHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	username := c.Query("UserName")

	profiles, err := database.ProfileByUserName(username)
	if err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to read database: %v", err))
		return
	}

	c.JSON(http.StatusOK, profiles)
}
