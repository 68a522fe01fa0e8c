package userapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"usertable/internal/domain"
)

// ErrDataLoadFailure is wrapped by every error returned from FetchUsers
var ErrDataLoadFailure = errors.New("data load failure")

// maxBodySize bounds how much of the response is read
const maxBodySize = 10 << 20

// Client fetches the user list from the data source
type Client struct {
	url        string
	httpClient *http.Client
	validate   *validator.Validate
}

// NewClient creates a client for the given endpoint
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(),
	}
}

// URL returns the endpoint the client reads from
func (c *Client) URL() string {
	return c.url
}

// FetchUsers performs a single GET of the full user list
func (c *Client) FetchUsers(ctx context.Context) ([]domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrDataLoadFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoadFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrDataLoadFailure, resp.StatusCode)
	}

	var users []domain.User
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&users); err != nil {
		return nil, fmt.Errorf("%w: decode body: %w", ErrDataLoadFailure, err)
	}
	if users == nil {
		return nil, fmt.Errorf("%w: response body is not a list", ErrDataLoadFailure)
	}

	for i := range users {
		if err := c.validate.Struct(&users[i]); err != nil {
			return nil, fmt.Errorf("%w: invalid record %d: %w", ErrDataLoadFailure, i, err)
		}
	}

	return users, nil
}
