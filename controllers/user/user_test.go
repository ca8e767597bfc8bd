package userController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ilearn/config"
	"ilearn/database"
	"ilearn/middleware"
	"ilearn/models"
	userRoutes "ilearn/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app
}

func createUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "hashed", Role: role, Phone: "123456", Bio: "Old bio"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func do(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (*http.Response, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestGetProfile(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "Ada", "ada@example.com", "instructor")

	resp, env := do(t, app, http.MethodGet, "/api/user/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data models.User
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, user.ID, data.ID)
	assert.Equal(t, "Ada", data.Name)
	assert.Equal(t, "ada@example.com", data.Email)
	assert.Equal(t, "instructor", data.Role)
	assert.Equal(t, "123456", data.Phone)
	assert.Equal(t, "Old bio", data.Bio)

	// the password hash never leaves the server
	assert.NotContains(t, string(env.Data), "hashed")
}

func TestGetProfileRequiresToken(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "Ada", "ada@example.com", "instructor")

	resp, env := do(t, app, http.MethodPut, "/api/user/profile", token, map[string]string{
		"name":  "Ada Lovelace",
		"phone": "555-0100",
		"bio":   "First programmer",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data models.User
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Ada Lovelace", data.Name)
	assert.Equal(t, "555-0100", data.Phone)
	assert.Equal(t, "First programmer", data.Bio)

	var stored models.User
	require.NoError(t, database.Database.Db.First(&stored, user.ID).Error)
	assert.Equal(t, "Ada Lovelace", stored.Name)
	assert.Equal(t, "555-0100", stored.Phone)
	assert.Equal(t, "First programmer", stored.Bio)

	// email and role stay fixed
	assert.Equal(t, "ada@example.com", stored.Email)
	assert.Equal(t, "instructor", stored.Role)
}

func TestUpdateProfileClearsOptionalFields(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "Ada", "ada@example.com", "instructor")

	resp, _ := do(t, app, http.MethodPut, "/api/user/profile", token, map[string]string{
		"name": "Ada",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.User
	require.NoError(t, database.Database.Db.First(&stored, user.ID).Error)
	assert.Empty(t, stored.Phone)
	assert.Empty(t, stored.Bio)
}

func TestUpdateProfileRequiresName(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, "Ada", "ada@example.com", "instructor")

	resp, env := do(t, app, http.MethodPut, "/api/user/profile", token, map[string]string{
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var fieldErrors map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fieldErrors))
	assert.Contains(t, fieldErrors, "name")

	var stored models.User
	require.NoError(t, database.Database.Db.First(&stored, user.ID).Error)
	assert.Equal(t, "Ada", stored.Name)
}
