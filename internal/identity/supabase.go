// Package identity talks to the Supabase Auth API: it verifies bearer
// tokens, registers users and deletes them on account removal.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/c00p75/fitness-league-sub000/internal/models"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrNotConfigured     = errors.New("identity provider not configured")
	ErrAlreadyRegistered = errors.New("email already registered")
	ErrRejected          = errors.New("identity provider rejected the request")
)

type Config struct {
	URL        string
	AnonKey    string
	ServiceKey string
	JWTSecret  string
	HTTPClient *http.Client
}

type SupabaseClient struct {
	url        string
	anonKey    string
	serviceKey string
	jwtSecret  []byte
	httpClient *http.Client
}

func NewSupabaseClient(cfg Config) *SupabaseClient {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &SupabaseClient{
		url:        strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
		jwtSecret:  []byte(cfg.JWTSecret),
		httpClient: client,
	}
}

type supabaseClaims struct {
	Email            string `json:"email"`
	Role             string `json:"role"`
	EmailConfirmedAt string `json:"email_confirmed_at,omitempty"`
	UserMetadata     struct {
		EmailVerified bool `json:"email_verified"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

type supabaseUser struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	EmailConfirmedAt *string `json:"email_confirmed_at"`
}

func (u supabaseUser) identity() *models.Identity {
	return &models.Identity{
		UID:           u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailConfirmedAt != nil && *u.EmailConfirmedAt != "",
	}
}

// VerifyToken checks the token locally when a JWT secret is configured and
// asks the Auth API otherwise, or when the token is signed with a key the
// secret cannot check.
func (s *SupabaseClient) VerifyToken(ctx context.Context, token string) (*models.Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	if len(s.jwtSecret) > 0 {
		identity, err := s.verifyLocal(token)
		if err == nil {
			return identity, nil
		}
		if s.url == "" || !errors.Is(err, jwt.ErrTokenUnverifiable) {
			return nil, err
		}
	}
	if s.url == "" {
		return nil, ErrNotConfigured
	}
	return s.fetchUser(ctx, token)
}

func (s *SupabaseClient) verifyLocal(token string) (*models.Identity, error) {
	claims := &supabaseClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.Role == "anon" {
		return nil, fmt.Errorf("%w: token has no user subject", ErrInvalidToken)
	}

	return &models.Identity{
		UID:           claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailConfirmedAt != "" || claims.UserMetadata.EmailVerified,
	}, nil
}

func (s *SupabaseClient) fetchUser(ctx context.Context, token string) (*models.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", s.anonKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("fetch user", resp)
	}

	var user supabaseUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: user response has no id", ErrInvalidToken)
	}
	return user.identity(), nil
}

// SignUp registers a user with email and password. AccessToken is nil when
// the project requires email confirmation before sign in.
func (s *SupabaseClient) SignUp(ctx context.Context, email, password string) (*models.SignUpResult, error) {
	if s.url == "" {
		return nil, ErrNotConfigured
	}
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("marshal signup payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/auth/v1/signup", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build signup request: %w", err)
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError {
		return nil, signUpError(resp)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, statusError("sign up", resp)
	}

	var body struct {
		AccessToken string        `json:"access_token"`
		User        *supabaseUser `json:"user"`
		supabaseUser
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode signup response: %w", err)
	}

	user := body.User
	if user == nil {
		user = &body.supabaseUser
	}
	if user.ID == "" {
		return nil, fmt.Errorf("sign up: response has no user id")
	}
	result := &models.SignUpResult{UserID: user.ID, Email: user.Email}
	if body.AccessToken != "" {
		token := body.AccessToken
		result.AccessToken = &token
	}
	return result, nil
}

// DeleteUser removes the user from the provider. A user that is already
// gone is not an error.
func (s *SupabaseClient) DeleteUser(ctx context.Context, uid string) error {
	if s.url == "" || s.serviceKey == "" {
		return ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.url+"/auth/v1/admin/users/"+url.PathEscape(uid), nil)
	if err != nil {
		return fmt.Errorf("build delete user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError("delete user", resp)
	}
	return nil
}

func statusError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(body)))
}

func signUpError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	var body struct {
		ErrorCode string `json:"error_code"`
		Msg       string `json:"msg"`
		Message   string `json:"message"`
	}
	_ = json.Unmarshal(raw, &body)

	message := body.Msg
	if message == "" {
		message = body.Message
	}
	if body.ErrorCode == "user_already_exists" || body.ErrorCode == "email_exists" ||
		strings.Contains(strings.ToLower(message), "already registered") {
		return ErrAlreadyRegistered
	}
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	return fmt.Errorf("%w: %s", ErrRejected, message)
}
