package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"tablero/models"
)

// ErrUnexpectedStatus marks a non-2xx response from the RPC layer.
var ErrUnexpectedStatus = fmt.Errorf("platform: unexpected status")

// Client is the boundary contract with the reservation platform's RPC layer.
type Client interface {
	// GetDaySchedule returns the active opening intervals for a weekday,
	// ordered by opening time.
	GetDaySchedule(ctx context.Context, dayOfWeek int) ([]models.OpeningInterval, error)
	// QueryAvailability returns the bookable slots for a date and party. An
	// empty list is a valid "nothing available" response, not an error.
	QueryAvailability(ctx context.Context, req AvailabilityRequest) ([]models.AvailabilitySlot, error)
	// GetReservationFeed returns the reservations and active tables for a date.
	GetReservationFeed(ctx context.Context, date string) (*models.ReservationFeed, error)
}

// HTTPClient talks JSON over HTTP to the RPC layer.
type HTTPClient struct {
	BaseURL string
	client  *http.Client
}

// NewHTTPClient creates a client with the given base URL and request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) GetDaySchedule(ctx context.Context, dayOfWeek int) ([]models.OpeningInterval, error) {
	var rows []scheduleRow
	endpoint := "/rpc/schedule?day_of_week=" + strconv.Itoa(dayOfWeek)
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &rows); err != nil {
		return nil, err
	}
	intervals := make([]models.OpeningInterval, 0, len(rows))
	for _, row := range rows {
		intervals = append(intervals, row.toModel())
	}
	return intervals, nil
}

func (c *HTTPClient) QueryAvailability(ctx context.Context, req AvailabilityRequest) ([]models.AvailabilitySlot, error) {
	var resp availabilityResponse
	if err := c.request(ctx, http.MethodPost, "/rpc/availability", req, &resp); err != nil {
		return nil, err
	}
	slots := make([]models.AvailabilitySlot, 0, len(resp.Slots))
	for _, row := range resp.Slots {
		slots = append(slots, row.toModel())
	}
	return slots, nil
}

func (c *HTTPClient) GetReservationFeed(ctx context.Context, date string) (*models.ReservationFeed, error) {
	var resp feedResponse
	if err := c.request(ctx, http.MethodGet, "/rpc/reservations?date="+date, nil, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

// request makes an HTTP request to the RPC layer and decodes the response.
func (c *HTTPClient) request(ctx context.Context, method, endpoint string, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	url := c.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}
	return nil
}
