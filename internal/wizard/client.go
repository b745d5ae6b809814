package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gym-portal/internal/delivery/dto"
)

const (
	DefaultBaseURL = "http://localhost:3000"

	signupPath = "/api/users/signup"
	usersPath  = "/api/users"

	fallbackSignupError = "Error registering user"
	fallbackUsersError  = "Error fetching users"
)

// ErrNetwork reports that the request never produced a usable response.
var ErrNetwork = errors.New("Network error")

// ServerError carries a non-success response. Message is the server's
// "error" field verbatim, or a generic fallback when it is missing.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// Submitter sends a completed form. *APIClient implements it.
type Submitter interface {
	Submit(ctx context.Context, form *dto.SignupRequest) (*dto.SignupResponse, error)
}

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Submit posts the whole form once. It never retries.
func (c *APIClient) Submit(ctx context.Context, form *dto.SignupRequest) (*dto.SignupResponse, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("encode signup form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+signupPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build signup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out dto.SignupResponse
	if err := c.do(req, &out, fallbackSignupError); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+usersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build users request: %w", err)
	}

	var out []dto.UserResponse
	if err := c.do(req, &out, fallbackUsersError); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) do(req *http.Request, out any, fallback string) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		msg := fallback
		if json.Unmarshal(raw, &body) == nil && body.Error != "" {
			msg = body.Error
		}
		return &ServerError{Status: res.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrNetwork, err)
	}
	return nil
}
