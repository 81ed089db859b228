// Package federated keeps the third-party identity session on the device and
// refreshes its ID token against the secure token endpoint.
package federated

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"savor-sync/internal/infra"
	"savor-sync/internal/infra/kvstore"
	"savor-sync/internal/pkg/clock"
	"savor-sync/internal/pkg/config"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/pkg/jwt"
)

const (
	KeyUserID       = "federatedUserId"
	KeyIDToken      = "federatedIdToken"
	KeyRefreshToken = "federatedRefreshToken"
)

var (
	ErrNoSession       = errs.New("no federated session")
	ErrRefreshRejected = errs.New("token refresh rejected")
)

type Session struct {
	mu       sync.Mutex
	kv       kvstore.Store
	http     *http.Client
	endpoint string
	apiKey   string
	skew     time.Duration
	clock    clock.Clock
	logger   *slog.Logger
}

func NewSession(kv kvstore.Store, cfg config.Config, clock clock.Clock, logger *slog.Logger) *Session {
	return &Session{
		kv:       kv,
		http:     &http.Client{Timeout: cfg.Backend.Timeout},
		endpoint: cfg.Federated.TokenEndpoint,
		apiKey:   cfg.Federated.APIKey,
		skew:     cfg.Federated.RefreshSkew,
		clock:    clock,
		logger:   logger,
	}
}

func (s *Session) SignIn(ctx context.Context, userID, idToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store(ctx, userID, idToken, refreshToken)
}

func (s *Session) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(ctx, KeyUserID, KeyIDToken, KeyRefreshToken); err != nil {
		return infra.WrapErr(s.logger, infra.KindStorage, "clear federated session", err, errs.ErrStorageFailure)
	}
	return nil
}

func (s *Session) CurrentUser(ctx context.Context) (string, bool) {
	uid, ok, err := s.kv.Get(ctx, KeyUserID)
	if err != nil {
		s.logger.Warn("failed to read federated user", "error", err)
		return "", false
	}
	return uid, ok && uid != ""
}

// IDToken returns the cached token while it is outside the refresh skew,
// otherwise exchanges the refresh token for a new one.
func (s *Session) IDToken(ctx context.Context, forceRefresh bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, _, err := s.kv.Get(ctx, KeyIDToken)
	if err != nil {
		return "", infra.WrapErr(s.logger, infra.KindStorage, "read federated id token", err, errs.ErrStorageFailure)
	}
	if !forceRefresh && token != "" && !jwt.ExpiresWithin(token, s.clock.Now(), s.skew) {
		return token, nil
	}

	refresh, ok, err := s.kv.Get(ctx, KeyRefreshToken)
	if err != nil {
		return "", infra.WrapErr(s.logger, infra.KindStorage, "read federated refresh token", err, errs.ErrStorageFailure)
	}
	if !ok || refresh == "" {
		return "", ErrNoSession
	}
	return s.refresh(ctx, refresh)
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	ExpiresIn    string `json:"expires_in"`
}

type refreshError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Session) refresh(ctx context.Context, refreshToken string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	endpoint := s.endpoint
	if s.apiKey != "" {
		endpoint += "?key=" + url.QueryEscape(s.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "build refresh request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", infra.WrapErr(s.logger, infra.KindTransport, "refresh federated token", err, nil)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", infra.WrapErr(s.logger, infra.KindTransport, "read refresh response", err, nil)
	}
	if resp.StatusCode != http.StatusOK {
		var re refreshError
		_ = json.Unmarshal(body, &re)
		return "", errs.Wrapf(ErrRefreshRejected, "status %d %s", resp.StatusCode, re.Error.Message)
	}

	var out refreshResponse
	if err := json.Unmarshal(body, &out); err != nil || out.IDToken == "" {
		return "", infra.WrapErr(s.logger, infra.KindMalformed, "decode refresh response", err, errs.ErrMalformedResponse)
	}

	uid, _, err := s.kv.Get(ctx, KeyUserID)
	if err != nil {
		return "", infra.WrapErr(s.logger, infra.KindStorage, "read federated user", err, errs.ErrStorageFailure)
	}
	if out.UserID != "" {
		uid = out.UserID
	}
	nextRefresh := out.RefreshToken
	if nextRefresh == "" {
		nextRefresh = refreshToken
	}
	if err := s.store(ctx, uid, out.IDToken, nextRefresh); err != nil {
		return "", err
	}
	s.logger.Debug("federated token refreshed", "user_id", uid, "expires_in", out.ExpiresIn)
	return out.IDToken, nil
}

func (s *Session) store(ctx context.Context, userID, idToken, refreshToken string) error {
	for _, kv := range [][2]string{
		{KeyUserID, userID},
		{KeyIDToken, idToken},
		{KeyRefreshToken, refreshToken},
	} {
		if err := s.kv.Set(ctx, kv[0], kv[1]); err != nil {
			return infra.WrapErr(s.logger, infra.KindStorage, "write "+kv[0], err, errs.ErrStorageFailure)
		}
	}
	return nil
}
