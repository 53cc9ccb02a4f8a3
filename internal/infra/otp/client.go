// Package otp is the client of the external email OTP service.
package otp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"parkospace/config"
	"parkospace/internal/domain/service"
	"parkospace/internal/errors"
)

const (
	defaultBaseURL      = "https://otp-service-beta.vercel.app/api/otp"
	defaultOrganization = "ParkoSpace India"
	defaultSubject      = "ParkoSpace Login Verification"
	defaultTimeout      = 10 * time.Second
)

type generateRequest struct {
	Email        string `json:"email"`
	Type         string `json:"type"`
	Organization string `json:"organization"`
	Subject      string `json:"subject"`
}

type verifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Client implements service.OTPProvider over HTTP.
type Client struct {
	baseURL      string
	organization string
	subject      string
	client       *http.Client
	logger       *slog.Logger
}

// NewClient creates an OTP client from config.
func NewClient(cfg *config.Config, logger *slog.Logger) service.OTPProvider {
	oc := cfg.OTP
	if oc == nil {
		oc = &config.OTPConfig{}
	}

	c := &Client{
		baseURL:      strings.TrimRight(oc.BaseURL, "/"),
		organization: oc.Organization,
		subject:      oc.Subject,
		client:       &http.Client{Timeout: oc.Timeout},
		logger:       logger,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.organization == "" {
		c.organization = defaultOrganization
	}
	if c.subject == "" {
		c.subject = defaultSubject
	}
	if c.client.Timeout <= 0 {
		c.client.Timeout = defaultTimeout
	}

	return c
}

// Generate asks the service to email a numeric code.
func (c *Client) Generate(ctx context.Context, email string) error {
	status, body, err := c.post(ctx, "/generate", generateRequest{
		Email:        email,
		Type:         "numeric",
		Organization: c.organization,
		Subject:      c.subject,
	})
	if err != nil {
		return err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		c.logger.Warn("OTP service refused to send code",
			slog.Int("status", status),
			slog.String("response", body),
		)

		return service.ErrOTPNotSent
	}

	c.logger.Info("OTP sent", slog.String("email", email))

	return nil
}

// Verify checks a code. Only 200 counts as valid.
func (c *Client) Verify(ctx context.Context, email, code string) error {
	status, _, err := c.post(ctx, "/verify", verifyRequest{Email: email, OTP: code})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return service.ErrOTPRejected
	}

	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (int, string, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return 0, "", errors.Wrap(err, "marshal otp request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return 0, "", errors.Wrap(err, "build otp request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, "", errors.Wrap(err, "otp service unreachable")
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	return resp.StatusCode, string(body), nil
}
