package handlers_test

import (
	"net/http"
	"testing"

	"github.com/dcamargo/restaurant-finder/internal/api/handlers"
	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/dcamargo/restaurant-finder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginAs(t *testing.T, ts *testutil.TestServer, username, password string) string {
	t.Helper()

	resp := ts.Request(t, http.MethodPost, "/users/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var loginResp handlers.LoginResponse
	testutil.AssertJSONResponse(t, resp, &loginResp)
	require.NotEmpty(t, loginResp.Token)
	return loginResp.Token
}

func TestRestaurantSearch(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token := loginAs(t, ts, user.Username, rawPassword)

	t.Run("requires authentication", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/restaurants?city=Bogota", "", nil)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("search by city", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/restaurants?city=Bogota", token, nil)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var restaurants []domain.Restaurant
		testutil.AssertJSONResponse(t, resp, &restaurants)
		require.Len(t, restaurants, 2)
		assert.Equal(t, "El Buen Sabor", restaurants[0].Name)
	})

	t.Run("unknown city", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/restaurants?city=nowhere", token, nil)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "city not found")
	})

	t.Run("search by coordinates", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/restaurants?lat=4.60971&lng=-74.08175", token, nil)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var restaurants []domain.Restaurant
		testutil.AssertJSONResponse(t, resp, &restaurants)
		assert.Len(t, restaurants, 2)
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/restaurants?lat=123&lng=456", token, nil)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})

	t.Run("no location at all", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/restaurants", token, nil)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "missing required query parameters")
	})
}

func TestRestaurantSearchUsesCache(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token := loginAs(t, ts, user.Username, rawPassword)

	before := ts.Places.SearchCalls()

	resp := ts.Request(t, http.MethodGet, "/restaurants?lat=4.60971&lng=-74.08175&radius=500", token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	resp.Body.Close()

	resp = ts.Request(t, http.MethodGet, "/restaurants?lat=4.60971&lng=-74.08175&radius=500", token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	resp.Body.Close()

	assert.Equal(t, before+1, ts.Places.SearchCalls(), "repeat search should be served from cache")
}
