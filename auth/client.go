// Package auth integrates the external authentication provider. Sign-up,
// sign-in and credential storage are delegated entirely to Supabase GoTrue;
// this service only resolves callers from the access tokens it issues.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Identity is a caller resolved by the auth provider.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session is the result of a successful password sign-in.
type Session struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int      `json:"expires_in"`
	User        Identity `json:"user"`
}

// Provider is the slice of the auth collaborator this service uses.
type Provider interface {
	SignUp(ctx context.Context, name, email, password string) (*Identity, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	DeleteUser(ctx context.Context, id string) error
}

// Client talks to the GoTrue REST API under {baseURL}/auth/v1. The anon key
// authenticates public flows; the service-role key is required for the
// admin user-deletion rollback.
type Client struct {
	baseURL        string
	anonKey        string
	serviceRoleKey string
	httpClient     *http.Client
}

func NewClient(baseURL, anonKey, serviceRoleKey string) *Client {
	return &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		anonKey:        anonKey,
		serviceRoleKey: serviceRoleKey,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
	}
}

type signUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type gotrueUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func (u gotrueUser) identity() Identity {
	id := Identity{ID: u.ID, Email: u.Email}
	if name, ok := u.UserMetadata["name"].(string); ok {
		id.Name = name
	}
	return id
}

// gotrueError covers the error payload variants GoTrue returns across
// endpoints (msg, message, error_description).
type gotrueError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (e gotrueError) text() string {
	switch {
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	default:
		return "auth provider request failed"
	}
}

// SignUp creates a new auth identity with the visitor's name attached as
// user metadata.
func (c *Client) SignUp(ctx context.Context, name, email, password string) (*Identity, error) {
	payload := signUpRequest{
		Email:    email,
		Password: password,
		Data:     map[string]any{"name": name},
	}

	var user gotrueUser
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", c.anonKey, payload, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("auth provider returned no user")
	}

	identity := user.identity()
	return &identity, nil
}

// SignInWithPassword exchanges credentials for a session holding the
// access token the authorization gate verifies.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	var session struct {
		AccessToken string     `json:"access_token"`
		TokenType   string     `json:"token_type"`
		ExpiresIn   int        `json:"expires_in"`
		User        gotrueUser `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", c.anonKey, signInRequest{email, password}, &session)
	if err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, fmt.Errorf("auth provider returned no session")
	}

	return &Session{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
		User:        session.User.identity(),
	}, nil
}

// DeleteUser removes an auth identity. Used to roll back a sign-up whose
// application profile row could not be persisted, so no orphaned credential
// is left behind.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/auth/v1/admin/users/"+id, c.serviceRoleKey, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, key string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal auth request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read auth response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var gerr gotrueError
		if json.Unmarshal(respBody, &gerr) == nil {
			return fmt.Errorf("%s", gerr.text())
		}
		return fmt.Errorf("auth provider returned status %d", resp.StatusCode)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode auth response: %w", err)
		}
	}
	return nil
}
