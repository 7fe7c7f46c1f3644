package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the network identity provider. The service trusts this
// boundary completely and performs no verification of its own.
type Client struct {
	baseURL     string
	bearerToken string // service token for the staff roster endpoint
	httpClient  *http.Client
	log         Logger
}

// NewClient builds an identity client.
func NewClient(baseURL, bearerToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		bearerToken: bearerToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetUser resolves a member bearer token into the member record.
func (c *Client) GetUser(ctx context.Context, userToken string) (*User, error) {
	url := fmt.Sprintf("%s/api/user", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+userToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: user record missing id", ErrInvalidResponse)
	}

	return &user, nil
}

// IsStaff checks whether the member appears on the provider's staff roster.
func (c *Client) IsStaff(ctx context.Context, userID string) (bool, error) {
	url := fmt.Sprintf("%s/v2/users/staff", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var roster []StaffMember
	if err := json.NewDecoder(resp.Body).Decode(&roster); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	for _, member := range roster {
		if member.ID == userID {
			return true, nil
		}
	}

	return false, nil
}

// IsStaffWithGracefulDegradation resolves staff membership, mapping any
// provider failure to "not staff" after an ERROR log. Staff status only gates
// privileged actions, so a provider outage must not take the service down.
func (c *Client) IsStaffWithGracefulDegradation(ctx context.Context, userID string) bool {
	isStaff, err := c.IsStaff(ctx, userID)
	if err != nil {
		c.log.Error("Identity provider unavailable, treating user_id=%s as non-staff: %v", userID, err)
		return false
	}
	return isStaff
}
