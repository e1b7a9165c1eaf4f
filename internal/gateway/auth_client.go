package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Hengzhou-Li/COMP5348-2025-Tutorial-10-Group-08/internal/domain"
)

// AuthClient wraps the auth service endpoints. Cookie credentials are
// handled by the shared client's jar.
type AuthClient struct {
	baseURL string
	client  *http.Client
}

func NewAuthClient(baseURL string, client *http.Client) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		client:  client,
	}
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResult struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

func (c *AuthClient) Login(ctx context.Context, credentials Credentials) (*AuthResult, error) {
	var result AuthResult
	err := doJSON(ctx, c.client, http.MethodPost, c.baseURL+"/login", credentials, &result, "Login failed")
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *AuthClient) Signup(ctx context.Context, credentials Credentials) (*AuthResult, error) {
	var result AuthResult
	err := doJSON(ctx, c.client, http.MethodPost, c.baseURL+"/signup", credentials, &result, "Sign up failed")
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *AuthClient) Logout(ctx context.Context) error {
	return doJSON(ctx, c.client, http.MethodPost, c.baseURL+"/logout", nil, nil, "Logout failed")
}

// FetchSession probes the current session. A 401 is the valid logged-out
// state and yields (nil, nil); any other failure is a real error.
func (c *AuthClient) FetchSession(ctx context.Context) (*domain.Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Failed to verify session. Status %d", resp.StatusCode),
		}
	}

	var session domain.Session
	if err := decodeBody(resp, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
