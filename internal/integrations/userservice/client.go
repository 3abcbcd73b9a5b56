package userservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

// Client talks to users-ms. Every call is best-effort: enrichment data is
// nice to have and must never fail a booking request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetByIDs batch-resolves user profiles. Failures degrade to an empty result.
func (c *Client) GetByIDs(ctx context.Context, ids []uuid.UUID, user domain.CurrentUser) []User {
	if len(ids) == 0 {
		return nil
	}

	payload, err := json.Marshal(map[string][]uuid.UUID{"ids": ids})
	if err != nil {
		c.log.Warn("[Client.GetByIDs] marshal failed: %v", err)
		return nil
	}

	endpoint := fmt.Sprintf("%s/api/v1/users/batch", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		c.log.Warn("[Client.GetByIDs] failed to create request: %v", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", user.ID.String())
	req.Header.Set("X-Username", url.QueryEscape(user.Username))
	req.Header.Set("X-User-Scopes", user.Scopes.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("[Client.GetByIDs] users-ms unreachable: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("[Client.GetByIDs] unexpected status code %d", resp.StatusCode)
		return nil
	}

	var users []User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		c.log.Warn("[Client.GetByIDs] failed to decode response: %v", err)
		return nil
	}
	return users
}
