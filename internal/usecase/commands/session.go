package commands

import (
	"context"
	"log/slog"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/ownership"
	"savor-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=session.go -destination=../../../tests/mock/commands/session_mock.go -package=commandsmock

// FederatedSessionWriter is the sign-in side of the federated identity session.
type FederatedSessionWriter interface {
	SignIn(ctx context.Context, userID, idToken, refreshToken string) error
	SignOut(ctx context.Context) error
}

type FederatedSignIn struct {
	UserID       string
	IDToken      string
	RefreshToken string
}

type SessionCommands interface {
	SignInLocal(ctx context.Context, token, userID string) error
	SignInFederated(ctx context.Context, in FederatedSignIn) error
	ContinueAsGuest(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
}

type sessionCommandsImpl struct {
	sessions  shared.SessionStore
	federated FederatedSessionWriter
	gate      ownership.Gate
	logger    *slog.Logger
}

func NewSessionCommands(
	sessions shared.SessionStore,
	federated FederatedSessionWriter,
	gate ownership.Gate,
	logger *slog.Logger,
) SessionCommands {
	return &sessionCommandsImpl{
		sessions:  sessions,
		federated: federated,
		gate:      gate,
		logger:    logger,
	}
}

func (c *sessionCommandsImpl) SignInLocal(ctx context.Context, token, userID string) error {
	creds, err := auth.NewSessionCredentials(token, userID)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidRequest)
	}
	if err := c.resetOwnerOnAccountChange(ctx, creds.UserID()); err != nil {
		return err
	}
	if err := c.sessions.SaveLogin(ctx, creds); err != nil {
		return errs.Mark(errs.Wrap(err, "save session"), errs.ErrStorageFailure)
	}
	c.logger.Info("signed in with local session", "user_id", creds.UserID())
	return nil
}

func (c *sessionCommandsImpl) SignInFederated(ctx context.Context, in FederatedSignIn) error {
	if in.UserID == "" || in.IDToken == "" || in.RefreshToken == "" {
		return errs.Mark(auth.ErrInvalidCredentials, errs.ErrInvalidRequest)
	}
	if err := c.resetOwnerOnAccountChange(ctx, in.UserID); err != nil {
		return err
	}
	if err := c.federated.SignIn(ctx, in.UserID, in.IDToken, in.RefreshToken); err != nil {
		return errs.Mark(errs.Wrap(err, "store federated session"), errs.ErrStorageFailure)
	}
	if err := c.sessions.SaveUserID(ctx, in.UserID); err != nil {
		return errs.Mark(errs.Wrap(err, "save session user"), errs.ErrStorageFailure)
	}
	c.logger.Info("signed in with federated session", "user_id", in.UserID)
	return nil
}

// resetOwnerOnAccountChange turns owner mode off unless the same user signs in
// again. Ownership cached for one account never carries over to another.
func (c *sessionCommandsImpl) resetOwnerOnAccountChange(ctx context.Context, userID string) error {
	current, err := c.sessions.Load(ctx)
	if err != nil {
		c.logger.Warn("failed to load session before sign-in, resetting owner mode", "error", err)
	} else if !current.IsGuest && current.UserID == userID {
		return nil
	}
	return c.gate.Reset(ctx)
}

// ContinueAsGuest drops any signed-in identity, keeps an existing guest marker
// and turns owner mode off.
func (c *sessionCommandsImpl) ContinueAsGuest(ctx context.Context) (string, error) {
	current, err := c.sessions.Load(ctx)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "load session"), errs.ErrStorageFailure)
	}
	guestSessionID := current.GuestSessionID
	if guestSessionID == "" {
		guestSessionID = uuid.NewString()
	}

	if err := c.federated.SignOut(ctx); err != nil {
		c.logger.Warn("failed to sign out federated session", "error", err)
	}
	if err := c.sessions.SaveGuest(ctx, guestSessionID); err != nil {
		return "", errs.Mark(errs.Wrap(err, "save guest session"), errs.ErrStorageFailure)
	}
	if err := c.gate.Reset(ctx); err != nil {
		return "", err
	}
	return guestSessionID, nil
}

func (c *sessionCommandsImpl) Logout(ctx context.Context) error {
	if err := c.federated.SignOut(ctx); err != nil {
		c.logger.Warn("failed to sign out federated session", "error", err)
	}
	if err := c.sessions.Clear(ctx); err != nil {
		return errs.Mark(errs.Wrap(err, "clear session"), errs.ErrStorageFailure)
	}
	return c.gate.Reset(ctx)
}
