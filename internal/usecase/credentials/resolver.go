package credentials

import (
	"context"
	"log/slog"
	"time"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/pkg/config"
	"savor-sync/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

//go:generate mockgen -source=resolver.go -destination=../../../tests/mock/credentials/resolver_mock.go -package=credentialsmock

// FederatedSource is the third-party identity session.
type FederatedSource interface {
	CurrentUser(ctx context.Context) (string, bool)
	IDToken(ctx context.Context, forceRefresh bool) (string, error)
}

// LocalTokenSource reads the session token persisted at login.
type LocalTokenSource interface {
	Token(ctx context.Context) (string, bool)
}

var errSourcesEmpty = errs.New("no credential source populated yet")

type Resolver struct {
	federated   FederatedSource
	local       LocalTokenSource
	maxAttempts int
	delay       time.Duration
	logger      *slog.Logger
}

func NewResolver(federated FederatedSource, local LocalTokenSource, cfg config.Config, logger *slog.Logger) *Resolver {
	return &Resolver{
		federated:   federated,
		local:       local,
		maxAttempts: cfg.Credential.MaxAttempts,
		delay:       cfg.Credential.RetryDelay,
		logger:      logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context) (auth.Credential, bool) {
	return r.ResolveWith(ctx, r.maxAttempts, r.delay)
}

// ResolveWith tries the federated session then the local token on every
// attempt, waiting delay between attempts. Nothing is cached across calls.
func (r *Resolver) ResolveWith(ctx context.Context, maxAttempts int, delay time.Duration) (auth.Credential, bool) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var resolved auth.Credential
	operation := func() error {
		cred, ok := r.tryOnce(ctx)
		if !ok {
			return errSourcesEmpty
		}
		resolved = cred
		return nil
	}

	// The wait between attempts ignores ctx: a caller that no longer needs the
	// credential discards the result instead of cancelling.
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), uint64(maxAttempts-1))
	notify := func(err error, wait time.Duration) {
		r.logger.Debug("credential not available yet, retrying", "wait", wait, "error", err)
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		r.logger.Debug("credential resolution gave up", "max_attempts", maxAttempts, "error", err)
		return auth.Credential{}, false
	}
	return resolved, true
}

func (r *Resolver) tryOnce(ctx context.Context) (auth.Credential, bool) {
	if r.federated != nil {
		if uid, ok := r.federated.CurrentUser(ctx); ok {
			token, err := r.federated.IDToken(ctx, false)
			if err == nil {
				if cred, credErr := auth.NewFederatedToken(token); credErr == nil {
					return cred, true
				}
			} else {
				r.logger.Warn("federated token refresh failed", "user_id", uid, "error", err)
			}
		}
	}

	if r.local != nil {
		if token, ok := r.local.Token(ctx); ok {
			if cred, err := auth.NewLocalSessionToken(token); err == nil {
				return cred, true
			}
		}
	}
	return auth.Credential{}, false
}
