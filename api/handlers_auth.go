package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/KaustubhAs/student-alumni-connect-app/config"
	"github.com/KaustubhAs/student-alumni-connect-app/db"
	"github.com/KaustubhAs/student-alumni-connect-app/models"
	"github.com/KaustubhAs/student-alumni-connect-app/utils"

	"github.com/gin-gonic/gin"
)

// LoginUser is the user payload of a successful login: the stored user record
// plus the computed FullName. The stored record includes the plain-text
// password, which the original API echoed back verbatim; see DESIGN.md.
type LoginUser struct {
	models.User
	FullName string `json:"FullName"`
}

// LoginResult is one element of the login response array. The client reads
// result[0].matched. Token is additive; consumers that only read matched and
// user are unaffected.
type LoginResult struct {
	Matched int        `json:"matched"`
	User    *LoginUser `json:"user,omitempty"`
	Token   string     `json:"token,omitempty"`
}

// LoginHandler checks the supplied credentials against the users collection.
// @Summary      Log In
// @Description  Scans the users collection for an exact, case-sensitive match of UserName and Password.
// @Description  Responds with a one-element array: `[{"matched":0}]` on failure, or `[{"matched":1,"user":{...},"token":"..."}]` on success, where the user payload carries a computed FullName and the token is an optional session JWT for /me.
// @Tags         Auth
// @Produce      json
// @Param        UserName  query  string  true  "Username (case-sensitive)"
// @Param        Password  query  string  true  "Password (case-sensitive)"
// @Success      200  {array}  LoginResult  "Always 200; matched signals the outcome."
// @Failure      500  {object}  utils.APIError  "The database could not be read."
// @Router       /login [get]
func LoginHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	username := c.Query("UserName")
	password := c.Query("Password")

	user, matched, err := database.Authenticate(username, password)
	if err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to read database: %v", err))
		return
	}

	if !matched {
		c.JSON(http.StatusOK, []LoginResult{{Matched: 0}})
		return
	}

	result := LoginResult{
		Matched: 1,
		User:    &LoginUser{User: user, FullName: user.FirstName + " " + user.LastName},
	}

	// The session token is best-effort: login predates tokens and must not
	// fail because one could not be signed.
	token, err := utils.GenerateJWT(&user, cfg)
	if err != nil {
		log.Printf("WARN: Login succeeded for '%s' but session token generation failed: %v", username, err)
	} else {
		result.Token = token
	}

	c.JSON(http.StatusOK, []LoginResult{result})
}

// MeHandler returns the profile of the authenticated user.
// @Summary      Get Your Own Profile
// @Description  Requires a Bearer session token from /login. Returns the caller's profile as a 0- or 1-element array, the same shape as /getProfileByUserName.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.ProfileView
// @Failure      401  {object}  utils.APIError  "Missing, invalid, or expired token."
// @Failure      500  {object}  utils.APIError  "The database could not be read."
// @Router       /me [get]
func MeHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	userName, exists := c.Get("userName")
	if !exists {
		utils.GinInternalServerError(c, "User name not found in context. Middleware issue?")
		return
	}
	userNameStr, ok := userName.(string)
	if !ok || userNameStr == "" {
		utils.GinInternalServerError(c, "Invalid user name format in context.")
		return
	}

	profiles, err := database.ProfileByUserName(userNameStr)
	if err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to read database: %v", err))
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// AdminStatus carries the admin flag of the adminAccess response.
type AdminStatus struct {
	Admin int `json:"Admin"`
}

// AdminAccessResponse is the envelope the client reads as message.Admin.
type AdminAccessResponse struct {
	Message AdminStatus `json:"message"`
}

// AdminAccessHandler reports whether the given username has admin access.
// @Summary      Check Admin Access
// @Description  Returns Admin=1 if and only if UserName equals the literal "admin". This is a hardcoded identity check with no lookup against the user collection, preserved from the original; see DESIGN.md.
// @Tags         Auth
// @Produce      json
// @Param        UserName  query  string  false  "Username to check"
// @Success      200  {object}  AdminAccessResponse
// @Router       /adminAccess [get]
func AdminAccessHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	admin := 0
	if c.Query("UserName") == "admin" {
		admin = 1
	}
	c.JSON(http.StatusOK, AdminAccessResponse{Message: AdminStatus{Admin: admin}})
}
