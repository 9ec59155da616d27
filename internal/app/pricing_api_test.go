package app_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planPayload struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	MonthlyMinutes int      `json:"monthly_minutes"`
	Features       []string `json:"features"`
	IsPopular      bool     `json:"is_popular"`
}

func createPlan(t *testing.T, ts *testServer, token string, body map[string]interface{}) string {
	t.Helper()
	res, respBody := ts.sendRequest(t, http.MethodPost, "/api/pricing", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, respBody)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(respBody), &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestPlanFeaturesRoundTripOverAPI(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)

	createPlan(t, ts, token, map[string]interface{}{
		"name":            "Pro",
		"price":           29.0,
		"monthly_minutes": 1200,
		"features":        []string{"A", "B"},
	})

	res, body := ts.sendRequest(t, http.MethodGet, "/api/pricing", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var plans []planPayload
	require.NoError(t, json.Unmarshal([]byte(body), &plans))
	require.Len(t, plans, 1)
	// The stored JSON column comes back as the identical ordered list
	assert.Equal(t, []string{"A", "B"}, plans[0].Features)
}

func TestPlanList_SortedByPrice(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)

	createPlan(t, ts, token, map[string]interface{}{
		"name": "Business", "price": 99.0, "monthly_minutes": 6000,
	})
	createPlan(t, ts, token, map[string]interface{}{
		"name": "Free", "price": 0.0, "monthly_minutes": 60,
	})

	res, body := ts.sendRequest(t, http.MethodGet, "/api/pricing", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var plans []planPayload
	require.NoError(t, json.Unmarshal([]byte(body), &plans))
	require.Len(t, plans, 2)
	assert.Equal(t, "Free", plans[0].Name)
	assert.Equal(t, "Business", plans[1].Name)
}

func TestPlanCreate_ZeroPriceIsValid(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)

	// A free tier: price 0 must pass the required check
	createPlan(t, ts, token, map[string]interface{}{
		"name": "Free", "price": 0.0, "monthly_minutes": 60,
	})
}

func TestPlanCreate_MissingRequiredFields(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)

	res, body := ts.sendRequest(t, http.MethodPost, "/api/pricing", token, map[string]interface{}{
		"description": "no name, no price",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "name")
	assert.Contains(t, body, "price")
	assert.Contains(t, body, "monthly_minutes")
}

func TestPlanUpdate(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)

	id := createPlan(t, ts, token, map[string]interface{}{
		"name": "Pro", "price": 29.0, "monthly_minutes": 1200,
		"features": []string{"A"},
	})

	res, body := ts.sendRequest(t, http.MethodPut, "/api/pricing/"+id, token, map[string]interface{}{
		"name": "Pro", "price": 39.0, "monthly_minutes": 1500,
		"features":   []string{"B", "A"},
		"is_popular": true,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Pricing plan updated successfully")

	res, body = ts.sendRequest(t, http.MethodGet, "/api/pricing", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var plans []planPayload
	require.NoError(t, json.Unmarshal([]byte(body), &plans))
	require.Len(t, plans, 1)
	assert.Equal(t, float64(39), plans[0].Price)
	assert.Equal(t, []string{"B", "A"}, plans[0].Features)
	assert.True(t, plans[0].IsPopular)
}

func TestPlanUpdateAndDelete_NotFound(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)

	res, body := ts.sendRequest(t, http.MethodPut, "/api/pricing/00000000-0000-0000-0000-000000000000", token, map[string]interface{}{
		"name": "Ghost", "price": 1.0, "monthly_minutes": 1,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Pricing plan not found")

	res, body = ts.sendRequest(t, http.MethodDelete, "/api/pricing/00000000-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Pricing plan not found")
}

func TestPlanDelete(t *testing.T) {
	ts := newTestServer(t)
	token := ts.loginAdmin(t)

	id := createPlan(t, ts, token, map[string]interface{}{
		"name": "Doomed", "price": 5.0, "monthly_minutes": 100,
	})

	res, body := ts.sendRequest(t, http.MethodDelete, "/api/pricing/"+id, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Pricing plan deleted successfully")

	res, body = ts.sendRequest(t, http.MethodGet, "/api/pricing", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, "[]", body)
}
