package app_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"admin_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedExtraUsers adds n product accounts next to the seeded admin.
func seedExtraUsers(t *testing.T, ts *testServer, n int) {
	t.Helper()
	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		u := models.User{
			FullName: fmt.Sprintf("Customer %02d", i),
			Email:    fmt.Sprintf("customer%02d@example.com", i),
		}
		u.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, ts.DB.Create(&u).Error)
	}
}

type userListPayload struct {
	Users []struct {
		ID       string `json:"id"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	} `json:"users"`
	Pagination struct {
		CurrentPage int   `json:"currentPage"`
		TotalPages  int   `json:"totalPages"`
		TotalUsers  int64 `json:"totalUsers"`
		HasNext     bool  `json:"hasNext"`
		HasPrev     bool  `json:"hasPrev"`
	} `json:"pagination"`
}

func TestListUsers_Pagination(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)
	// 24 customers + the admin row = 25 users total
	seedExtraUsers(t, ts, 24)

	res, body := ts.sendRequest(t, http.MethodGet, "/api/users?page=1&limit=10", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page1 userListPayload
	require.NoError(t, json.Unmarshal([]byte(body), &page1))
	assert.Len(t, page1.Users, 10)
	assert.Equal(t, 1, page1.Pagination.CurrentPage)
	assert.Equal(t, 3, page1.Pagination.TotalPages)
	assert.EqualValues(t, 25, page1.Pagination.TotalUsers)
	assert.True(t, page1.Pagination.HasNext)
	assert.False(t, page1.Pagination.HasPrev)

	res, body = ts.sendRequest(t, http.MethodGet, "/api/users?page=3&limit=10", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var page3 userListPayload
	require.NoError(t, json.Unmarshal([]byte(body), &page3))
	assert.Len(t, page3.Users, 5)
	assert.False(t, page3.Pagination.HasNext)
	assert.True(t, page3.Pagination.HasPrev)
}

func TestListUsers_Defaults(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)
	seedExtraUsers(t, ts, 14)

	// No query params: page 1, limit 10
	res, body := ts.sendRequest(t, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var payload userListPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Len(t, payload.Users, 10)
	assert.Equal(t, 1, payload.Pagination.CurrentPage)
	assert.EqualValues(t, 15, payload.Pagination.TotalUsers)
}

func TestListUsers_Search(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)
	seedExtraUsers(t, ts, 5)

	res, body := ts.sendRequest(t, http.MethodGet, "/api/users?search=customer%2003", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var payload userListPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Len(t, payload.Users, 1)
	assert.Equal(t, "Customer 03", payload.Users[0].FullName)
}

func TestGetUserByID(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)

	res, body := ts.sendRequest(t, http.MethodGet, "/api/users/"+adminID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, adminEmail)

	res, body = ts.sendRequest(t, http.MethodGet, "/api/users/00000000-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "User not found")
}

func TestDeleteUser(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)

	victim := models.User{FullName: "Victim", Email: "victim@example.com"}
	require.NoError(t, ts.DB.Create(&victim).Error)

	res, body := ts.sendRequest(t, http.MethodDelete, "/api/users/"+victim.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "User deleted successfully")

	// Concurrent double delete: the second caller just sees NotFound.
	res, body = ts.sendRequest(t, http.MethodDelete, "/api/users/"+victim.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "User not found")
}
