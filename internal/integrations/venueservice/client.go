package venueservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

// Client talks to venues-ms over its internal HTTP API. The caller's
// identity headers are forwarded so venues-ms applies its own authorization.
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

// GetVenue fetches a single venue. Load-bearing: booking creation fails
// when the venue cannot be resolved.
func (c *Client) GetVenue(ctx context.Context, venueID uuid.UUID, user domain.CurrentUser) (*Venue, error) {
	endpoint := fmt.Sprintf("%s/api/v1/venues/%s", c.baseURL, venueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.forwardIdentity(req, user)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrVenueNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrServiceUnavailable, resp.StatusCode, string(body))
	}

	var venue Venue
	if err := json.NewDecoder(resp.Body).Decode(&venue); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrServiceUnavailable, err)
	}
	return &venue, nil
}

// GetUnavailabilities fetches the venue's owner-blocked windows. Load-bearing:
// a booking cannot be created without knowing them.
func (c *Client) GetUnavailabilities(ctx context.Context, venueID uuid.UUID, user domain.CurrentUser) ([]domain.Slot, error) {
	endpoint := fmt.Sprintf("%s/api/v1/venues/%s/unavailabilities", c.baseURL, venueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.forwardIdentity(req, user)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrServiceUnavailable, resp.StatusCode, string(body))
	}

	var windows []domain.Slot
	if err := json.NewDecoder(resp.Body).Decode(&windows); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrServiceUnavailable, err)
	}
	return windows, nil
}

// GetByIDs batch-resolves venue names for response enrichment. Best-effort:
// failures degrade to an empty result.
func (c *Client) GetByIDs(ctx context.Context, ids []uuid.UUID, user domain.CurrentUser) []VenueListItem {
	if len(ids) == 0 {
		return nil
	}

	payload, err := json.Marshal(map[string][]uuid.UUID{"ids": ids})
	if err != nil {
		c.log.Warn("[Client.GetByIDs] marshal failed: %v", err)
		return nil
	}

	endpoint := fmt.Sprintf("%s/api/v1/venues/batch", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		c.log.Warn("[Client.GetByIDs] failed to create request: %v", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	c.forwardIdentity(req, user)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("[Client.GetByIDs] venues-ms unreachable: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("[Client.GetByIDs] unexpected status code %d", resp.StatusCode)
		return nil
	}

	var items []VenueListItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		c.log.Warn("[Client.GetByIDs] failed to decode response: %v", err)
		return nil
	}
	return items
}

func (c *Client) forwardIdentity(req *http.Request, user domain.CurrentUser) {
	req.Header.Set("X-User-Id", user.ID.String())
	req.Header.Set("X-Username", url.QueryEscape(user.Username))
	req.Header.Set("X-User-Scopes", user.Scopes.String())
}
