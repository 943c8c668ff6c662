package handlers_test

import (
	"net/http"
	"testing"

	"github.com/chantier-dev/chantier/db"
	"github.com/chantier-dev/chantier/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := setupRouter(t)

	rec := doRequest(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "m@x.com",
		"password": "password1",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "m@x.com", user["email"])
	assert.Equal(t, models.RoleWorker, user["role"])
	assert.NotEmpty(t, user["createdAt"])
}

func TestRegisterWithRole(t *testing.T) {
	r := setupRouter(t)

	rec := doRequest(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "boss@x.com",
		"password": "password1",
		"role":     models.RoleManager,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	user := decodeBody(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, models.RoleManager, user["role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "m@x.com", "password1")

	rec := doRequest(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "m@x.com",
		"password": "password2",
	})

	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "email_exists", body["error"])
}

func TestRegisterValidation(t *testing.T) {
	r := setupRouter(t)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"password": "password1"}},
		{"malformed email", gin.H{"email": "nope", "password": "password1"}},
		{"short password", gin.H{"email": "m@x.com", "password": "short"}},
		{"unknown role", gin.H{"email": "m@x.com", "password": "password1", "role": "OVERLORD"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, r, http.MethodPost, "/auth/register", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "bad_request", decodeBody(t, rec)["error"])
		})
	}
}

func TestLogin(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "m@x.com", "password1")

	rec := doRequest(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "m@x.com",
		"password": "password1",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r := setupRouter(t)

	registerUser(t, r, "m@x.com", "password1")

	wrongPassword := doRequest(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "m@x.com",
		"password": "wrongpass",
	})
	unknownEmail := doRequest(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "ghost@x.com",
		"password": "password1",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Equal(t, "invalid_credentials", decodeBody(t, wrongPassword)["error"])
}

func TestMe(t *testing.T) {
	r := setupRouter(t)

	token := registerUser(t, r, "m@x.com", "password1")

	rec := doRequest(t, r, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	user := decodeBody(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, "m@x.com", user["email"])
}

func TestMeAfterUserDeleted(t *testing.T) {
	r := setupRouter(t)

	token := registerUser(t, r, "m@x.com", "password1")

	require.NoError(t, db.DB.Unscoped().Where("email = ?", "m@x.com").Delete(&models.User{}).Error)

	rec := doRequest(t, r, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", decodeBody(t, rec)["error"])
}
