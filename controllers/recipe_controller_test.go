package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eoreilly0906/Spoon-API/config"
	"github.com/eoreilly0906/Spoon-API/models"
	"github.com/eoreilly0906/Spoon-API/routes"
	"github.com/eoreilly0906/Spoon-API/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}))

	cfg := config.Config{
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	}
	return routes.SetupRouter(cfg, db), db
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func registerUser(t *testing.T, r *gin.Engine, username string) authResponse {
	t.Helper()

	w := do(r, http.MethodPost, "/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var out authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out
}

func eggsBody() gin.H {
	return gin.H{
		"title":        "Eggs",
		"mealType":     "Breakfast",
		"region":       "American",
		"ingredients":  "eggs\nsalt",
		"instructions": "cook",
	}
}

// The full seeded-login walkthrough: login as the seeded user, see an
// empty list, create a recipe, see exactly that recipe.
func TestSeededLoginScenario(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, services.SeedUsers(db))

	w := do(r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "Admin123",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var auth authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	assert.NotEmpty(t, auth.Token)
	assert.NotZero(t, auth.UserID)
	assert.Equal(t, "Admin123", auth.Username)
	assert.Equal(t, "admin@gmail.com", auth.Email)

	w = do(r, http.MethodGet, "/recipes", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(r, http.MethodPost, "/recipes", auth.Token, eggsBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, auth.UserID, created.UserID)
	assert.Equal(t, "Eggs", created.Title)

	w = do(r, http.MethodGet, "/recipes", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestLoginFailureIsUniform401(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, services.SeedUsers(db))

	wrongPassword := do(r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "Admin123",
		"password": "nope",
	})
	unknownUser := do(r, http.MethodPost, "/auth/login", "", gin.H{
		"username": "Nobody",
		"password": "password",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	// identical bodies, nothing to enumerate usernames with
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestRegisterDuplicateUsernameIs400(t *testing.T) {
	r, _ := newTestServer(t)
	registerUser(t, r, "alice")

	w := do(r, http.MethodPost, "/auth/register", "", gin.H{
		"username": "alice",
		"email":    "other@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMe(t *testing.T) {
	r, _ := newTestServer(t)
	auth := registerUser(t, r, "alice")

	w := do(r, http.MethodGet, "/auth/me", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(
		`{"id": %d, "username": "alice", "email": "alice@example.com"}`, auth.UserID,
	), w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/auth/me", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/auth/me", "garbage", nil).Code)
}

func TestCreateIgnoresClientSuppliedUserID(t *testing.T) {
	r, _ := newTestServer(t)
	alice := registerUser(t, r, "alice")
	bob := registerUser(t, r, "bob")

	body := eggsBody()
	body["userId"] = bob.UserID // must be ignored

	w := do(r, http.MethodPost, "/recipes", alice.Token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, alice.UserID, created.UserID)
}

func TestCreateValidation(t *testing.T) {
	r, _ := newTestServer(t)
	auth := registerUser(t, r, "alice")

	missingTitle := eggsBody()
	delete(missingTitle, "title")
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/recipes", auth.Token, missingTitle).Code)

	badMealType := eggsBody()
	badMealType["mealType"] = "Brunch"
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/recipes", auth.Token, badMealType).Code)
}

func TestCrossUserAccessLooksLikeNotFound(t *testing.T) {
	r, _ := newTestServer(t)
	alice := registerUser(t, r, "alice")
	bob := registerUser(t, r, "bob")

	w := do(r, http.MethodPost, "/recipes", alice.Token, eggsBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/recipes/%d", created.ID)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, path, bob.Token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, path, bob.Token, gin.H{"title": "Stolen"}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, path, bob.Token, nil).Code)

	// and the recipe never shows up in bob's list
	w = do(r, http.MethodGet, "/recipes", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestUpdateIsPartial(t *testing.T) {
	r, _ := newTestServer(t)
	auth := registerUser(t, r, "alice")

	w := do(r, http.MethodPost, "/recipes", auth.Token, eggsBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(r, http.MethodPut, fmt.Sprintf("/recipes/%d", created.ID), auth.Token, gin.H{
		"title": "Scrambled Eggs",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Scrambled Eggs", updated.Title)
	assert.Equal(t, "Breakfast", updated.MealType)
	assert.Equal(t, "eggs\nsalt", updated.Ingredients)
	assert.Equal(t, created.UserID, updated.UserID)
}

func TestDeleteIsIdempotentNotFound(t *testing.T) {
	r, _ := newTestServer(t)
	auth := registerUser(t, r, "alice")

	w := do(r, http.MethodPost, "/recipes", auth.Token, eggsBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/recipes/%d", created.ID)
	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, path, auth.Token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, path, auth.Token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, path, auth.Token, nil).Code)
}

func TestNonNumericRecipeIDIsNotFound(t *testing.T) {
	r, _ := newTestServer(t)
	auth := registerUser(t, r, "alice")

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/recipes/abc", auth.Token, nil).Code)
}

func TestRecipesRequireToken(t *testing.T) {
	r, _ := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/recipes", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/recipes", "garbage", nil).Code)
}

func TestSearchWithoutAPIKeyIs503(t *testing.T) {
	r, _ := newTestServer(t)
	auth := registerUser(t, r, "alice")

	w := do(r, http.MethodGet, "/search/recipes?ingredients=eggs", auth.Token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(r, http.MethodPost, "/recipes/import", auth.Token, gin.H{
		"spoonacularId": 7,
		"mealType":      "Breakfast",
		"region":        "American",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
