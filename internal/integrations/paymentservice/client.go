package paymentservice

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to payments-ms. Refunds are fire-and-forget: a cancellation
// stands even when the refund call fails.
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

// RefundBooking requests a refund for the booking and reports whether
// payments-ms accepted it.
func (c *Client) RefundBooking(ctx context.Context, bookingID uuid.UUID, user domain.CurrentUser) bool {
	endpoint := fmt.Sprintf("%s/api/v1/payments/bookings/%s/refund", c.baseURL, bookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		c.log.Warn("[Client.RefundBooking] failed to create request: %v", err)
		return false
	}
	req.Header.Set("X-User-Id", user.ID.String())
	req.Header.Set("X-Username", url.QueryEscape(user.Username))
	req.Header.Set("X-User-Scopes", user.Scopes.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("[Client.RefundBooking] payments-ms unreachable for booking %s: %v", bookingID, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Error("[Client.RefundBooking] refund rejected for booking %s: status %d", bookingID, resp.StatusCode)
		return false
	}

	c.log.Info("[Client.RefundBooking] refund accepted for booking %s", bookingID)
	return true
}
