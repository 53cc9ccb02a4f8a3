// Package gateway is the HTTP client for the parkospace API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"parkospace/config"
	"parkospace/internal/delivery/http/dto"
	"parkospace/internal/delivery/http/response"
	"parkospace/internal/domain/entity"
	"parkospace/internal/errors"
	"parkospace/internal/usecase"

	"github.com/google/uuid"
)

// APIError is a non-success reply of the API.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}

	return e.Message
}

// Client calls the listing, geocoding and auth endpoints.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New builds a client from the client config. A nil httpClient gets one with the configured timeout.
func New(cfg *config.ClientConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// Nearby queries listings around center, nearest first.
func (c *Client) Nearby(ctx context.Context, center entity.GeoPoint, radiusKm float64) ([]entity.NearbyListing, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(center.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(center.Lng, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))

	var items []dto.Listing
	if err := c.do(ctx, http.MethodGet, "/api/listings?"+q.Encode(), "", nil, &items); err != nil {
		return nil, err
	}

	nearby := make([]entity.NearbyListing, 0, len(items))
	for _, item := range items {
		nearby = append(nearby, item.Nearby())
	}

	return nearby, nil
}

// Portfolio lists the listings of an owner.
func (c *Client) Portfolio(ctx context.Context, ownerPhone string) ([]*entity.Listing, error) {
	q := url.Values{}
	q.Set("owner_phone", ownerPhone)

	var items []dto.Listing
	if err := c.do(ctx, http.MethodGet, "/api/listings?"+q.Encode(), "", nil, &items); err != nil {
		return nil, err
	}

	listings := make([]*entity.Listing, 0, len(items))
	for _, item := range items {
		listings = append(listings, item.Entity())
	}

	return listings, nil
}

func (c *Client) CreateListing(ctx context.Context, token string, draft *entity.ListingDraft) (*entity.Listing, error) {
	var item dto.Listing
	if err := c.do(ctx, http.MethodPost, "/api/listings", token, dto.NewListingRequest(draft), &item); err != nil {
		return nil, err
	}

	return item.Entity(), nil
}

func (c *Client) UpdateListing(ctx context.Context, token string, id uuid.UUID, draft *entity.ListingDraft) (*entity.Listing, error) {
	var item dto.Listing
	if err := c.do(ctx, http.MethodPut, "/api/listings/"+id.String(), token, dto.NewListingRequest(draft), &item); err != nil {
		return nil, err
	}

	return item.Entity(), nil
}

func (c *Client) DeleteListing(ctx context.Context, token string, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/listings/"+id.String(), token, nil, nil)
}

// QRCode downloads the PNG share code of a listing.
func (c *Client) QRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/listings/"+id.String()+"/qrcode", "", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read qrcode")
	}

	return png, nil
}

func (c *Client) SearchLocation(ctx context.Context, query string) (*entity.Place, error) {
	var place dto.Place
	if err := c.do(ctx, http.MethodPost, "/api/utils/search-location", "", dto.SearchLocationRequest{Query: query}, &place); err != nil {
		return nil, err
	}

	return place.Entity(), nil
}

func (c *Client) ParseMapURL(ctx context.Context, rawURL string) (*entity.Place, error) {
	var place dto.Place
	if err := c.do(ctx, http.MethodPost, "/api/utils/parse-map-url", "", dto.ParseMapURLRequest{URL: rawURL}, &place); err != nil {
		return nil, err
	}

	return place.Entity(), nil
}

func (c *Client) SendOTP(ctx context.Context, email, phone string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/send-otp", "", dto.SendOTPRequest{Email: email, Phone: phone}, nil)
}

func (c *Client) VerifyOwner(ctx context.Context, input *usecase.VerifyOwnerInput) (*entity.OwnerSession, error) {
	body := dto.VerifyOwnerRequest{Phone: input.Phone, Email: input.Email, Code: input.Code, Name: input.Name}

	var session dto.Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-owner", "", body, &session); err != nil {
		return nil, err
	}

	return session.Entity(), nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, token, body)
	if err != nil {
		return err
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope response.Envelope[json.RawMessage]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}
		}

		return errors.Wrap(err, "decode response")
	}
	if !envelope.Success || resp.StatusCode >= http.StatusBadRequest {
		return envelopeError(resp.StatusCode, envelope.Message, envelope.Error)
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.Wrap(err, "decode response data")
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

func (c *Client) send(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}

	c.logger.Debug("API request",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	return resp, nil
}

func decodeError(resp *http.Response) error {
	var envelope response.Envelope[json.RawMessage]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}
	}

	return envelopeError(resp.StatusCode, envelope.Message, envelope.Error)
}

func envelopeError(status int, message string, info *response.ErrorInfo) error {
	apiErr := &APIError{Status: status, Message: message}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	if info != nil {
		apiErr.Code = info.Code
		apiErr.Details = info.Details
	}

	return apiErr
}
