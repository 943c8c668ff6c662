package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/chantier-dev/chantier/db"
	"github.com/chantier-dev/chantier/internal/auth"
	"github.com/chantier-dev/chantier/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// setupRouter wires the full route tree against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	auth.InitJWTSecret()

	dsn := fmt.Sprintf("file:handlers%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", testDBSeq.Add(1))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	db.DB = gdb
	require.NoError(t, db.MigrateDatabase())

	return router.NewRouter()
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// registerUser creates an account and returns its bearer token.
func registerUser(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	rec := doRequest(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok, "register response must carry a token")
	return token
}

// createProject returns the id of a freshly created project.
func createProject(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()

	rec := doRequest(t, r, http.MethodPost, "/projects", token, gin.H{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	project, ok := body["project"].(map[string]interface{})
	require.True(t, ok)
	return uint(project["id"].(float64))
}
