package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/api/handlers"
	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/dcamargo/restaurant-finder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegistration(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
		wantError  string
	}{
		{
			name:       "successful registration",
			body:       map[string]string{"username": "alice", "password": "Password123!", "name": "Alice Smith"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			body:       map[string]string{"username": "bob"},
			wantStatus: http.StatusBadRequest,
			wantError:  "required",
		},
		{
			name:       "weak password",
			body:       map[string]string{"username": "bob", "password": "weak", "name": "Bob"},
			wantStatus: http.StatusBadRequest,
			wantError:  "password too weak",
		},
		{
			name:       "duplicate username",
			body:       map[string]string{"username": "alice", "password": "Password123!", "name": "Alice Again"},
			wantStatus: http.StatusConflict,
			wantError:  "User already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Request(t, http.MethodPost, "/users", "", tt.body)
			defer resp.Body.Close()

			if tt.wantError != "" {
				testutil.AssertErrorResponse(t, resp, tt.wantStatus, tt.wantError)
				return
			}

			testutil.AssertStatusCode(t, resp, tt.wantStatus)

			var created domain.User
			testutil.AssertJSONResponse(t, resp, &created)
			assert.Equal(t, tt.body["username"], created.Username)
			assert.Equal(t, tt.body["name"], created.Name)
			assert.Empty(t, created.PasswordHash, "password hash must never be serialized")
		})
	}
}

func TestLogin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, rawPassword := testutil.NewUserBuilder().
		WithUsername("loginuser").
		Build(t, ts.DB.DB)

	t.Run("valid credentials", func(t *testing.T) {
		resp := ts.Request(t, http.MethodPost, "/users/login", "", map[string]string{
			"username": "loginuser",
			"password": rawPassword,
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var loginResp handlers.LoginResponse
		testutil.AssertJSONResponse(t, resp, &loginResp)
		assert.NotEmpty(t, loginResp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := ts.Request(t, http.MethodPost, "/users/login", "", map[string]string{
			"username": "loginuser",
			"password": "WrongPassword1!",
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Invalid credentials")
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := ts.Request(t, http.MethodPost, "/users/login", "", map[string]string{
			"username": "ghost",
			"password": rawPassword,
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Invalid credentials")
	})
}

// TestSessionLifecycle walks the full flow: register, login, use the token on
// a protected route, log out, and observe the same token rejected afterwards.
func TestSessionLifecycle(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := ts.Request(t, http.MethodPost, "/users", "", map[string]string{
		"username": "alice",
		"password": "Password123!",
		"name":     "Alice Smith",
	})
	var alice domain.User
	testutil.AssertJSONResponse(t, resp, &alice)
	resp.Body.Close()

	resp = ts.Request(t, http.MethodPost, "/users/login", "", map[string]string{
		"username": "alice",
		"password": "Password123!",
	})
	var loginResp handlers.LoginResponse
	testutil.AssertJSONResponse(t, resp, &loginResp)
	resp.Body.Close()
	token := loginResp.Token
	require.NotEmpty(t, token)

	resp = ts.Request(t, http.MethodGet, "/restaurants?city=Bogota", token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	resp.Body.Close()

	// Audit entries are written off the request path, so poll for them.
	assert.Eventually(t, func() bool {
		var count int64
		ts.DB.DB.Model(&domain.Transaction{}).
			Where("user_id = ? AND status_code = ?", alice.ID, http.StatusOK).
			Count(&count)
		return count == 1
	}, 2*time.Second, 50*time.Millisecond, "expected an audit entry for the authenticated search")

	resp = ts.Request(t, http.MethodPost, "/users/logout", token, nil)
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)
	resp.Body.Close()

	// The token has not expired, but the session registry now rejects it.
	resp = ts.Request(t, http.MethodGet, "/restaurants?city=Bogota", token, nil)
	testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Invalid token")

	// The rejected request is audited too, still attributed to alice.
	assert.Eventually(t, func() bool {
		var count int64
		ts.DB.DB.Model(&domain.Transaction{}).
			Where("user_id = ? AND status_code = ?", alice.ID, http.StatusUnauthorized).
			Count(&count)
		return count == 1
	}, 2*time.Second, 50*time.Millisecond, "expected an audit entry for the rejected search")
}

func TestUserManagement(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, rawPassword := testutil.NewUserBuilder().
		WithUsername("admin").
		Build(t, ts.DB.DB)
	testutil.NewUserBuilder().
		WithUsername("target").
		WithName("Before").
		Build(t, ts.DB.DB)

	resp := ts.Request(t, http.MethodPost, "/users/login", "", map[string]string{
		"username": "admin",
		"password": rawPassword,
	})
	var loginResp handlers.LoginResponse
	testutil.AssertJSONResponse(t, resp, &loginResp)
	resp.Body.Close()
	token := loginResp.Token

	t.Run("list requires authentication", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/users", "", nil)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("list users", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/users", token, nil)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var users []domain.User
		testutil.AssertJSONResponse(t, resp, &users)
		assert.Len(t, users, 2)
	})

	t.Run("get by username", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/users/target", token, nil)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var user domain.User
		testutil.AssertJSONResponse(t, resp, &user)
		assert.Equal(t, "target", user.Username)
	})

	t.Run("get unknown username", func(t *testing.T) {
		resp := ts.Request(t, http.MethodGet, "/users/nobody", token, nil)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("update name", func(t *testing.T) {
		resp := ts.Request(t, http.MethodPut, "/users/target", token, map[string]string{"name": "After"})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var user domain.User
		testutil.AssertJSONResponse(t, resp, &user)
		assert.Equal(t, "After", user.Name)
	})

	t.Run("delete", func(t *testing.T) {
		resp := ts.Request(t, http.MethodDelete, "/users/target", token, nil)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNoContent)

		getResp := ts.Request(t, http.MethodGet, "/users/target", token, nil)
		defer getResp.Body.Close()
		testutil.AssertStatusCode(t, getResp, http.StatusNotFound)
	})
}
