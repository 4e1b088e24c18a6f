package gateway

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

	"github.com/petboard/petboard/internal/core/domain"
)

const DefaultTimeout = 10 * time.Second

// Messages surfaced to the user when a call fails without a usable
// server-supplied reason.
const (
	msgFetchClients      = "Failed to fetch clients"
	msgFetchPets         = "Failed to fetch pets"
	msgFetchVaccinations = "Failed to fetch vaccinations"
	msgFetchGrooming     = "Failed to fetch grooming"
	msgFetchBookings     = "Failed to fetch bookings"
	msgUpdatePet         = "Failed to update pet"
	msgCreateVacc        = "Failed to create vaccination"
)

// HTTPGateway issues JSON requests against a fixed base URL. Any non-2xx
// response becomes an error carrying a human-readable message, never a
// partial result.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

var _ Gateway = (*HTTPGateway)(nil)

func NewHTTP(baseURL string, timeout time.Duration) (*HTTPGateway, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("gateway: base url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("gateway: invalid base url: %w", err)
	}

	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// NewHTTPWithTransport injects a RoundTripper, mainly for tests.
func NewHTTPWithTransport(baseURL string, timeout time.Duration, tr http.RoundTripper) (*HTTPGateway, error) {
	g, err := NewHTTP(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if tr != nil {
		g.client.Transport = tr
	}
	return g, nil
}

func (g *HTTPGateway) ListClients(ctx context.Context) ([]domain.Client, error) {
	var out []domain.Client
	if err := g.doJSON(ctx, http.MethodGet, "/clients", nil, &out, msgFetchClients); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) ListPets(ctx context.Context) ([]domain.Pet, error) {
	var out []domain.Pet
	if err := g.doJSON(ctx, http.MethodGet, "/pets", nil, &out, msgFetchPets); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) ListVaccinations(ctx context.Context) ([]domain.Vaccination, error) {
	var out []domain.Vaccination
	if err := g.doJSON(ctx, http.MethodGet, "/vaccinations", nil, &out, msgFetchVaccinations); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) ListGrooming(ctx context.Context) ([]domain.Grooming, error) {
	var out []domain.Grooming
	if err := g.doJSON(ctx, http.MethodGet, "/grooming", nil, &out, msgFetchGrooming); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := g.doJSON(ctx, http.MethodGet, "/bookings", nil, &out, msgFetchBookings); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGateway) UpdatePet(ctx context.Context, id int64, patch domain.PetPatch) (domain.Pet, error) {
	var out domain.Pet
	path := fmt.Sprintf("/pets/%d", id)
	if err := g.doJSON(ctx, http.MethodPatch, path, patch, &out, msgUpdatePet); err != nil {
		return domain.Pet{}, err
	}
	return out, nil
}

// CreateVaccination tries the server-supplied error message before
// falling back to the generic one; the server validates due >= date and
// reports it through a JSON body with a "message" field.
func (g *HTTPGateway) CreateVaccination(ctx context.Context, input domain.NewVaccination) (domain.Vaccination, error) {
	var out domain.Vaccination
	err := g.doJSON(ctx, http.MethodPost, "/vaccinations", input, &out, msgCreateVacc)
	if err != nil {
		var httpErr *httpError
		if errors.As(err, &httpErr) {
			var body struct {
				Message string `json:"message"`
			}
			if jsonErr := json.Unmarshal(httpErr.body, &body); jsonErr == nil && body.Message != "" {
				return domain.Vaccination{}, errors.New(body.Message)
			}
			return domain.Vaccination{}, errors.New(msgCreateVacc)
		}
		return domain.Vaccination{}, err
	}
	return out, nil
}

// httpError keeps the raw body around so callers can mine it for a
// server-supplied message.
type httpError struct {
	status  int
	message string
	body    []byte
}

func (e *httpError) Error() string {
	return e.message
}

func (g *HTTPGateway) doJSON(ctx context.Context, method, path string, in, out any, friendly string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("gateway: marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("gateway: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.New(friendly)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &httpError{status: resp.StatusCode, message: friendly, body: raw}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("gateway: decode response: %w", err)
	}
	return nil
}
