package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func userClaims(sub string, expiresIn time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   sub,
		"email": sub + "@example.com",
		"role":  "authenticated",
		"exp":   time.Now().Add(expiresIn).Unix(),
		"user_metadata": map[string]any{
			"email_verified": true,
		},
	}
}

func TestVerifyTokenLocally(t *testing.T) {
	client := NewSupabaseClient(Config{JWTSecret: testSecret})

	identity, err := client.VerifyToken(context.Background(), signToken(t, testSecret, userClaims("user-1", time.Hour)))

	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UID)
	assert.Equal(t, "user-1@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)
}

func TestVerifyTokenRejectsBadTokensWithoutCallingAPI(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewSupabaseClient(Config{URL: server.URL, JWTSecret: testSecret})
	tokens := map[string]string{
		"expired":      signToken(t, testSecret, userClaims("user-1", -time.Hour)),
		"wrong secret": signToken(t, "another-secret-that-is-long-enough-000", userClaims("user-1", time.Hour)),
		"malformed":    "not-a-jwt",
		"anon key": signToken(t, testSecret, jwt.MapClaims{
			"role": "anon",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}),
	}

	for name, token := range tokens {
		_, err := client.VerifyToken(context.Background(), token)
		assert.True(t, errors.Is(err, ErrInvalidToken), name)
	}
	assert.Zero(t, calls)
}

func TestVerifyTokenFallsBackToAuthAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		if r.Header.Get("Authorization") != "Bearer opaque-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":                 "user-2",
			"email":              "user-2@example.com",
			"email_confirmed_at": "2026-01-01T00:00:00Z",
		})
	}))
	defer server.Close()

	client := NewSupabaseClient(Config{URL: server.URL, AnonKey: "anon-key"})

	identity, err := client.VerifyToken(context.Background(), "opaque-token")
	require.NoError(t, err)
	assert.Equal(t, "user-2", identity.UID)
	assert.True(t, identity.EmailVerified)

	_, err = client.VerifyToken(context.Background(), "other-token")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyTokenWithoutProvider(t *testing.T) {
	client := NewSupabaseClient(Config{})

	_, err := client.VerifyToken(context.Background(), "token")

	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestSignUpReturnsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "session-token",
			"user":         map[string]any{"id": "user-3", "email": "new@example.com"},
		})
	}))
	defer server.Close()

	client := NewSupabaseClient(Config{URL: server.URL, AnonKey: "anon-key"})
	result, err := client.SignUp(context.Background(), "new@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "user-3", result.UserID)
	require.NotNil(t, result.AccessToken)
	assert.Equal(t, "session-token", *result.AccessToken)
}

func TestSignUpPendingConfirmation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "user-4", "email": "pending@example.com"})
	}))
	defer server.Close()

	client := NewSupabaseClient(Config{URL: server.URL})
	result, err := client.SignUp(context.Background(), "pending@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "user-4", result.UserID)
	assert.Nil(t, result.AccessToken)
}

func TestSignUpExistingUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`))
	}))
	defer server.Close()

	client := NewSupabaseClient(Config{URL: server.URL})
	_, err := client.SignUp(context.Background(), "taken@example.com", "password123")

	assert.True(t, errors.Is(err, ErrAlreadyRegistered))
}

func TestDeleteUser(t *testing.T) {
	var deleted []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		deleted = append(deleted, r.URL.Path)
		if r.URL.Path == "/auth/v1/admin/users/gone" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewSupabaseClient(Config{URL: server.URL, ServiceKey: "service-key"})

	require.NoError(t, client.DeleteUser(context.Background(), "user-5"))
	require.NoError(t, client.DeleteUser(context.Background(), "gone"))
	assert.Equal(t, []string{"/auth/v1/admin/users/user-5", "/auth/v1/admin/users/gone"}, deleted)

	unconfigured := NewSupabaseClient(Config{URL: server.URL})
	assert.True(t, errors.Is(unconfigured.DeleteUser(context.Background(), "user-5"), ErrNotConfigured))
}
