package integration_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KaustubhAs/student-alumni-connect-app/api"
	"github.com/KaustubhAs/student-alumni-connect-app/config"
	"github.com/KaustubhAs/student-alumni-connect-app/db"
	"github.com/KaustubhAs/student-alumni-connect-app/models"
	"github.com/KaustubhAs/student-alumni-connect-app/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJwtSecret = "a-very-secure-secret-for-testing-only"

// newServer assembles the full application router in-process, backed by a
// seeded temporary database file, mirroring the wiring in main.go.
func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "workflow_db.json")
	seed := &models.Database{
		Users: []models.User{
			{UserName: "rohan", Password: "alumni2024", FirstName: "Rohan", LastName: "Mehta"},
			{UserName: "sneha", Password: "student2024", FirstName: "Sneha", LastName: "Kulkarni"},
		},
		Profiles: []models.Profile{
			{UserName: "rohan", FirstName: "Rohan", LastName: "Mehta", JobTitle: "Data Scientist", UserType: "Alumni", Mentoring: "Mentor"},
			{UserName: "sneha", FirstName: "Sneha", LastName: "Kulkarni", JobTitle: "Student", UserType: "Student", Mentoring: "No"},
		},
	}
	data, err := json.MarshalIndent(seed, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dbPath, data, 0644))

	cfg := &config.Config{
		DbFilePath:    dbPath,
		EnableBackup:  false,
		JwtSecret:     testJwtSecret,
		TokenLifetime: 1 * time.Hour,
	}

	database, err := db.NewDatabase(cfg)
	require.NoError(t, err)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(utils.RequestIDMiddleware())

	router.GET("/login", func(c *gin.Context) { api.LoginHandler(c, database, cfg) })
	router.GET("/getAllProfiles", func(c *gin.Context) { api.GetAllProfilesHandler(c, database, cfg) })
	router.GET("/getProfileByUserName", func(c *gin.Context) { api.GetProfileByUserNameHandler(c, database, cfg) })
	router.GET("/adminAccess", func(c *gin.Context) { api.AdminAccessHandler(c, database, cfg) })
	router.GET("/getAllConnection", func(c *gin.Context) { api.GetAllConnectionHandler(c, database, cfg) })
	router.POST("/connectionInsert", func(c *gin.Context) { api.ConnectionInsertHandler(c, database, cfg) })
	router.GET("/getMessages", func(c *gin.Context) { api.GetMessagesHandler(c, database, cfg) })
	router.POST("/sendMessage", func(c *gin.Context) { api.SendMessageHandler(c, database, cfg) })
	router.GET("/me", utils.AuthMiddleware(cfg), func(c *gin.Context) { api.MeHandler(c, database, cfg) })

	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// TestConnectWorkflow walks the whole user journey: a failed login, a
// successful login with a session token, browsing the directory, connecting
// in both directions, and exchanging messages.
func TestConnectWorkflow(t *testing.T) {
	router := newServer(t)

	// 1. A wrong password does not match, but the request still succeeds.
	rr := do(t, router, "GET", "/login?UserName=rohan&Password=wrong", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var loginResp []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	require.Len(t, loginResp, 1)
	assert.Equal(t, float64(0), loginResp[0]["matched"])

	// 2. Correct credentials match and hand back a session token.
	rr = do(t, router, "GET", "/login?UserName=rohan&Password=alumni2024", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	require.Len(t, loginResp, 1)
	require.Equal(t, float64(1), loginResp[0]["matched"])
	token, ok := loginResp[0]["token"].(string)
	require.True(t, ok)
	user := loginResp[0]["user"].(map[string]interface{})
	assert.Equal(t, "Rohan Mehta", user["FullName"])

	// 3. The token identifies the caller on /me.
	rr = do(t, router, "GET", "/me", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var me []models.ProfileView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	require.Len(t, me, 1)
	assert.Equal(t, "rohan", me[0].UserName)

	// 4. Browse the directory and look up the other member.
	rr = do(t, router, "GET", "/getAllProfiles", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var directory []models.ProfileView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &directory))
	assert.Len(t, directory, 2)

	rr = do(t, router, "GET", "/getProfileByUserName?UserName=sneha", nil, "")
	var lookup []models.ProfileView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &lookup))
	require.Len(t, lookup, 1)
	assert.Equal(t, "Sneha Kulkarni", lookup[0].FullName)

	// 5. Follow each other. The two directions are separate records.
	rr = do(t, router, "POST", "/connectionInsert", gin.H{"NameOne": "rohan", "NameTwo": "sneha"}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Connected"}`, rr.Body.String())

	rr = do(t, router, "POST", "/connectionInsert", gin.H{"NameOne": "sneha", "NameTwo": "rohan"}, "")
	assert.JSONEq(t, `{"success":true,"message":"Connected"}`, rr.Body.String())

	rr = do(t, router, "GET", "/getAllConnection", nil, "")
	var connections []models.Connection
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &connections))
	require.Len(t, connections, 2)
	assert.Equal(t, 1, connections[0].ConnectionID)
	assert.Equal(t, 2, connections[1].ConnectionID)

	// Repeating a follow is acknowledged without creating a record.
	rr = do(t, router, "POST", "/connectionInsert", gin.H{"NameOne": "rohan", "NameTwo": "sneha"}, "")
	assert.JSONEq(t, `{"success":true,"message":"Already connected"}`, rr.Body.String())

	rr = do(t, router, "GET", "/getAllConnection", nil, "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &connections))
	assert.Len(t, connections, 2)

	// 6. Exchange messages and read the conversation from both sides.
	rr = do(t, router, "POST", "/sendMessage", gin.H{"sender": "rohan", "receiver": "sneha", "content": "Happy to mentor you."}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"Message sent"}`, rr.Body.String())

	rr = do(t, router, "POST", "/sendMessage", gin.H{"sender": "sneha", "receiver": "rohan", "content": "Thank you!"}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	forward := do(t, router, "GET", "/getMessages?user1=rohan&user2=sneha", nil, "")
	reverse := do(t, router, "GET", "/getMessages?user1=sneha&user2=rohan", nil, "")
	require.Equal(t, http.StatusOK, forward.Code)
	assert.Equal(t, forward.Body.String(), reverse.Body.String())

	var conversation []models.Message
	require.NoError(t, json.Unmarshal(forward.Body.Bytes(), &conversation))
	require.Len(t, conversation, 2)
	assert.Equal(t, "Happy to mentor you.", conversation[0].Content)
	assert.Equal(t, "Thank you!", conversation[1].Content)

	// 7. Only the literal admin account gets the admin flag.
	rr = do(t, router, "GET", "/adminAccess?UserName=rohan", nil, "")
	assert.JSONEq(t, `{"message":{"Admin":0}}`, rr.Body.String())
	rr = do(t, router, "GET", "/adminAccess?UserName=admin", nil, "")
	assert.JSONEq(t, `{"message":{"Admin":1}}`, rr.Body.String())
}

// TestWorkflowSurvivesRestart verifies that everything written during a
// session is visible to a freshly constructed server over the same file.
func TestWorkflowSurvivesRestart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "restart_db.json")
	cfg := &config.Config{
		DbFilePath:    dbPath,
		EnableBackup:  false,
		JwtSecret:     testJwtSecret,
		TokenLifetime: 1 * time.Hour,
	}

	first, err := db.NewDatabase(cfg)
	require.NoError(t, err)

	result, err := first.InsertConnection("asha", "vikram")
	require.NoError(t, err)
	require.Equal(t, "Connected", result.Message)
	_, err = first.SendMessage("asha", "vikram", "see you at the reunion")
	require.NoError(t, err)

	second, err := db.NewDatabase(cfg)
	require.NoError(t, err)

	connections, err := second.AllConnections()
	require.NoError(t, err)
	require.Len(t, connections, 1)
	assert.Equal(t, models.Connection{ConnectionID: 1, NameOne: "asha", NameTwo: "vikram"}, connections[0])

	messages, err := second.MessagesBetween("vikram", "asha")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "see you at the reunion", messages[0].Content)
}
