// Package point is the HTTP client for the Minut Point cloud API. It covers
// the handful of endpoints the CLI needs: the password-grant token exchange,
// the device listing, per-device sensor readings and the event timeline.
//
// Every authenticated call carries a bearer token fixed at construction
// time. Responses keep the raw body alongside the decoded value so debug
// mode can dump exactly what the server sent.
package point

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dklimov/pointctl/internal/models"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.minut.com/draft1"

// Client defines the remote operations the CLI depends on. It exists so
// services can be tested against a stub without a live server.
type Client interface {
	Token(ctx context.Context, clientID, username, password string) (string, error)
	Devices(ctx context.Context) (DevicesResult, error)
	SensorValues(ctx context.Context, deviceID string, sensor Sensor) (ValuesResult, error)
	Events(ctx context.Context, limit int) (EventsResult, error)
}

// DevicesResult is the decoded live device listing plus the raw response.
type DevicesResult struct {
	Devices []models.DeviceStatus
	Raw     json.RawMessage
}

// ValuesResult is a decoded sensor sample sequence plus the raw response.
// Samples preserve API order, which the API guarantees to be chronologically
// ascending.
type ValuesResult struct {
	Samples []models.SensorSample
	Raw     json.RawMessage
}

// EventsResult is the decoded timeline plus the raw response. Events arrive
// newest first (the client always requests order=desc).
type EventsResult struct {
	Events []models.TimelineEvent
	Raw    json.RawMessage
}

// HTTPClient is the concrete Client backed by net/http.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a client for the given base URL using the given bearer token.
// The token may be empty for a client that only performs the token exchange.
func New(baseURL, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// get performs one API request and returns the raw body. Non-2xx responses
// are mapped to *APIError, with 401 additionally matching ErrUnauthorized;
// transport-level failures match ErrUnavailable.
func (c *HTTPClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: serverMessage(body, resp.Status)}
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
		}
		return nil, apiErr
	}
	return body, nil
}

// serverMessage extracts the human-readable error the API puts in its error
// bodies, falling back to the HTTP status line.
func serverMessage(body []byte, status string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return status
}

// Token performs the OAuth2 password-grant exchange and returns the access
// token. This is the only unauthenticated call.
func (c *HTTPClient) Token(ctx context.Context, clientID, username, password string) (string, error) {
	q := url.Values{}
	q.Set("client_id", clientID)
	q.Set("grant_type", "password")
	q.Set("username", username)
	q.Set("password", password)

	body, err := c.get(ctx, "/auth/token", q)
	if err != nil {
		return "", err
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", &APIError{StatusCode: http.StatusOK, Message: "no access token in response"}
	}
	return payload.AccessToken, nil
}

type apiDevice struct {
	DeviceID        string `json:"device_id"`
	Description     string `json:"description"`
	Offline         bool   `json:"offline"`
	Active          bool   `json:"active"`
	LastHeardFromAt string `json:"last_heard_from_at"`
}

// Devices fetches the full device listing for the authenticated account.
func (c *HTTPClient) Devices(ctx context.Context) (DevicesResult, error) {
	body, err := c.get(ctx, "/devices", nil)
	if err != nil {
		return DevicesResult{}, err
	}

	var payload struct {
		Devices []apiDevice `json:"devices"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return DevicesResult{}, fmt.Errorf("decoding devices response: %w", err)
	}

	result := DevicesResult{Raw: body}
	for _, d := range payload.Devices {
		result.Devices = append(result.Devices, models.DeviceStatus{
			ID:          d.DeviceID,
			Name:        d.Description,
			Offline:     d.Offline,
			Active:      d.Active,
			LastHeardAt: parseTimestamp(d.LastHeardFromAt),
		})
	}
	return result, nil
}

// SensorValues fetches the sample sequence for one sensor of one device.
func (c *HTTPClient) SensorValues(ctx context.Context, deviceID string, sensor Sensor) (ValuesResult, error) {
	body, err := c.get(ctx, "/devices/"+url.PathEscape(deviceID)+"/"+string(sensor), nil)
	if err != nil {
		return ValuesResult{}, err
	}

	var payload struct {
		Values []struct {
			Value    float64 `json:"value"`
			Datetime string  `json:"datetime"`
		} `json:"values"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ValuesResult{}, fmt.Errorf("decoding %s response: %w", sensor, err)
	}

	result := ValuesResult{Raw: body}
	for _, v := range payload.Values {
		result.Samples = append(result.Samples, models.SensorSample{
			Value:     v.Value,
			Timestamp: parseTimestamp(v.Datetime),
		})
	}
	return result, nil
}

// Events fetches the newest limit timeline events, newest first.
func (c *HTTPClient) Events(ctx context.Context, limit int) (EventsResult, error) {
	q := url.Values{}
	q.Set("order", "desc")
	q.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "/events", q)
	if err != nil {
		return EventsResult{}, err
	}

	var payload struct {
		Events []struct {
			Type       string `json:"type"`
			CreatedAt  string `json:"created_at"`
			TextParams []struct {
				Value string `json:"value"`
			} `json:"text_params"`
		} `json:"events"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return EventsResult{}, fmt.Errorf("decoding events response: %w", err)
	}

	result := EventsResult{Raw: body}
	for _, e := range payload.Events {
		event := models.TimelineEvent{
			Type:      e.Type,
			CreatedAt: parseTimestamp(e.CreatedAt),
		}
		if len(e.TextParams) > 0 {
			event.DeviceLabel = e.TextParams[0].Value
		}
		result.Events = append(result.Events, event)
	}
	return result, nil
}

// parseTimestamp decodes the API's RFC 3339 timestamps; a malformed or
// missing value yields the zero time rather than failing the whole response.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
