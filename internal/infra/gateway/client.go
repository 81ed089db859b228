// Package gateway is the HTTP boundary to the Savor backend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/infra"
	"savor-sync/internal/pkg/config"
	"savor-sync/internal/pkg/cookie"
	"savor-sync/internal/pkg/errs"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	maxResponseBytes     = 4 << 20
)

// GuestSessionSource supplies the device guest marker sent as a cookie.
type GuestSessionSource interface {
	GuestSessionID(ctx context.Context) (string, bool)
}

// Client sends JSON requests and classifies failures. It does not retry.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	guest   GuestSessionSource
	logger  *slog.Logger
}

func NewClient(cfg config.Config, guest GuestSessionSource, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.Backend.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse SAVOR_API_BASE_URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("SAVOR_API_BASE_URL must be absolute, got %q", cfg.Backend.BaseURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: cfg.Backend.Timeout,
			Jar:     jar,
		},
		guest:  guest,
		logger: logger,
	}, nil
}

type call struct {
	method         string
	path           string
	body           any
	cred           auth.Credential
	guest          bool
	idempotencyKey string
	// failure marks every error returned for this call
	failure error
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusError is the cause recorded for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.Code)
	}
	return fmt.Sprintf("backend responded %d: %s", e.Code, e.Message)
}

func (c *Client) do(ctx context.Context, in call) ([]byte, error) {
	var reader io.Reader
	if in.body != nil {
		encoded, err := json.Marshal(in.body)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "encode request body"), in.failure)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, c.baseURL.String()+in.path, reader)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "build request"), in.failure)
	}
	req.Header.Set("Accept", "application/json")
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !in.cred.IsZero() {
		req.Header.Set("Authorization", "Bearer "+in.cred.Token())
	}
	if in.guest && c.guest != nil {
		if id, ok := c.guest.GuestSessionID(ctx); ok {
			cookie.AttachGuestSession(req, id)
		}
	}
	if in.idempotencyKey != "" {
		req.Header.Set(IdempotencyKeyHeader, in.idempotencyKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindTransport, in.method+" "+in.path, err, in.failure)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindTransport, "read response "+in.path, err, in.failure)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Code: resp.StatusCode, Message: errorMessage(body)}
		kind := infra.KindUpstreamStatus
		if resp.StatusCode == http.StatusNotFound {
			kind = infra.KindNotFound
		}
		return nil, infra.WrapErr(c.logger, kind, in.method+" "+in.path, statusErr, in.failure)
	}
	return body, nil
}

func errorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Error != "" {
		return eb.Error
	}
	return eb.Message
}

// malformed marks a decode failure with both the malformed sentinel and the
// operation's own failure sentinel.
func (c *Client) malformed(msg string, err error, failure error) error {
	return errs.Mark(infra.WrapErr(c.logger, infra.KindMalformed, msg, err, errs.ErrMalformedResponse), failure)
}
