package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListSites(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "m@x.com", "password1")
	id := createProject(t, r, token, "Tower")

	rec := doRequest(t, r, http.MethodPost, fmt.Sprintf("/projects/%d/sites", id), token, gin.H{
		"name":      "Site A",
		"address":   "12 Quai des Docks",
		"startDate": "2026-02-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	site := decodeBody(t, rec)["site"].(map[string]interface{})
	assert.Equal(t, "Site A", site["name"])
	assert.Equal(t, float64(id), site["projectId"])

	list := doRequest(t, r, http.MethodGet, fmt.Sprintf("/projects/%d/sites", id), token, nil)
	require.Equal(t, http.StatusOK, list.Code)

	items := decodeBody(t, list)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Site A", items[0].(map[string]interface{})["name"])
}

func TestSiteValidation(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "m@x.com", "password1")
	id := createProject(t, r, token, "Tower")

	rec := doRequest(t, r, http.MethodPost, fmt.Sprintf("/projects/%d/sites", id), token, gin.H{"name": "S"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodPost, fmt.Sprintf("/projects/%d/sites", id), token, gin.H{
		"name":    "Site A",
		"endDate": "31/12/2026",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSitesGatedByOwnership(t *testing.T) {
	r := setupRouter(t)
	owner := registerUser(t, r, "m@x.com", "password1")
	intruder := registerUser(t, r, "o@x.com", "password1")
	id := createProject(t, r, owner, "Tower")

	list := doRequest(t, r, http.MethodGet, fmt.Sprintf("/projects/%d/sites", id), intruder, nil)
	require.Equal(t, http.StatusNotFound, list.Code)
	assert.Equal(t, "project_not_found", decodeBody(t, list)["error"])

	create := doRequest(t, r, http.MethodPost, fmt.Sprintf("/projects/%d/sites", id), intruder, gin.H{"name": "Site A"})
	require.Equal(t, http.StatusNotFound, create.Code)
	assert.Equal(t, "project_not_found", decodeBody(t, create)["error"])

	// Nothing leaked through the intruder's attempt.
	list = doRequest(t, r, http.MethodGet, fmt.Sprintf("/projects/%d/sites", id), owner, nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Empty(t, decodeBody(t, list)["items"])
}
