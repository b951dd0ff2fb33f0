// Package client is the Go client for the CineBook HTTP API, used by the
// terminal chat client and the booking orchestrator.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cinebook/api"
)

const defaultTimeout = 10 * time.Second

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "cinebook api error"
	}
	return fmt.Sprintf("cinebook api error: %s: %s", e.Status, e.Body)
}

// IsNotFound reports whether the error represents a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// Client wraps HTTP access to the CineBook API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates an API client for baseURL. If httpClient is nil, a default
// client with a 10 second timeout is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// Movies lists the catalog, optionally filtered to the given genres.
func (c *Client) Movies(ctx context.Context, genres []string) ([]api.Movie, error) {
	endpoint := c.baseURL + "/api/movies"
	if len(genres) > 0 {
		endpoint += "?genres=" + url.QueryEscape(strings.Join(genres, ","))
	}

	var movies []api.Movie
	if err := c.getJSON(ctx, endpoint, &movies); err != nil {
		return nil, err
	}

	return movies, nil
}

// Shows fetches the shows of a movie. Unknown ids yield an empty show list.
func (c *Client) Shows(ctx context.Context, movieID string) (api.ShowListResponse, error) {
	endpoint := fmt.Sprintf("%s/api/shows/%s", c.baseURL, url.PathEscape(movieID))

	var resp api.ShowListResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return api.ShowListResponse{}, err
	}

	return resp, nil
}

func (c *Client) CreateBooking(ctx context.Context, req api.CreateBookingRequest) (api.Booking, error) {
	var resp api.BookingResponse
	if err := c.postJSON(ctx, c.baseURL+"/api/book", req, &resp); err != nil {
		return api.Booking{}, err
	}

	return resp.Booking, nil
}

func (c *Client) CreatePayment(ctx context.Context, req api.CreatePaymentRequest) (api.Payment, error) {
	var resp api.PaymentResponse
	if err := c.postJSON(ctx, c.baseURL+"/api/pay/create", req, &resp); err != nil {
		return api.Payment{}, err
	}

	return resp.Payment, nil
}

func (c *Client) PaymentStatus(ctx context.Context, paymentID string) (api.PaymentStatusResponse, error) {
	endpoint := c.baseURL + "/api/pay/status?paymentId=" + url.QueryEscape(paymentID)

	var resp api.PaymentStatusResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return api.PaymentStatusResponse{}, err
	}

	return resp, nil
}

func (c *Client) ConfirmPayment(ctx context.Context, paymentID string) (api.Payment, error) {
	req := api.ConfirmPaymentRequest{PaymentId: paymentID}

	var resp api.PaymentResponse
	if err := c.postJSON(ctx, c.baseURL+"/api/pay/confirm", req, &resp); err != nil {
		return api.Payment{}, err
	}

	return resp.Payment, nil
}

// Ask sends a freeform prompt to the assistant endpoint.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	req := api.AssistantRequest{Prompt: prompt}

	var resp api.AssistantResponse
	if err := c.postJSON(ctx, c.baseURL+"/api/groq", req, &resp); err != nil {
		return "", err
	}

	return resp.Result, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	return c.doJSON(req, out)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Endpoint:   req.URL.Path,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}

	return nil
}
