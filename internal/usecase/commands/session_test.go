//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/commands"
	"savor-sync/internal/usecase/shared"
	commandsmock "savor-sync/tests/mock/commands"
	ownershipmock "savor-sync/tests/mock/ownership"
	sharedmock "savor-sync/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockSessions  *sharedmock.MockSessionStore
	mockFederated *commandsmock.MockFederatedSessionWriter
	mockGate      *ownershipmock.MockGate
	cmds          commands.SessionCommands
}

func (s *SessionCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = sharedmock.NewMockSessionStore(s.mockCtrl)
	s.mockFederated = commandsmock.NewMockFederatedSessionWriter(s.mockCtrl)
	s.mockGate = ownershipmock.NewMockGate(s.mockCtrl)
	s.cmds = commands.NewSessionCommands(s.mockSessions, s.mockFederated, s.mockGate, slog.New(slog.DiscardHandler))
}

func (s *SessionCommandsTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestSessionCommandsSuite(t *testing.T) {
	suite.Run(t, new(SessionCommandsTestSuite))
}

func (s *SessionCommandsTestSuite) TestSignInLocal() {
	s.Run("persists token and user id", func() {
		creds, err := auth.NewSessionCredentials("tok", "user-1")
		require.NoError(s.T(), err)
		gomock.InOrder(
			s.mockSessions.EXPECT().Load(gomock.Any()).Return(shared.Session{IsGuest: true, GuestSessionID: "guest-1"}, nil),
			s.mockGate.EXPECT().Reset(gomock.Any()).Return(nil),
			s.mockSessions.EXPECT().SaveLogin(gomock.Any(), creds).Return(nil),
		)

		assert.NoError(s.T(), s.cmds.SignInLocal(context.Background(), "tok", "user-1"))
	})

	s.Run("switching account resets owner mode", func() {
		gomock.InOrder(
			s.mockSessions.EXPECT().Load(gomock.Any()).Return(shared.Session{Token: "tok-owner", UserID: "owner-user"}, nil),
			s.mockGate.EXPECT().Reset(gomock.Any()).Return(nil),
			s.mockSessions.EXPECT().SaveLogin(gomock.Any(), gomock.Any()).Return(nil),
		)

		assert.NoError(s.T(), s.cmds.SignInLocal(context.Background(), "tok-other", "other-user"))
	})

	s.Run("same user signing in again keeps owner mode", func() {
		s.mockSessions.EXPECT().Load(gomock.Any()).Return(shared.Session{Token: "tok-old", UserID: "owner-user"}, nil)
		s.mockSessions.EXPECT().SaveLogin(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(s.T(), s.cmds.SignInLocal(context.Background(), "tok-new", "owner-user"))
	})

	s.Run("unreadable session resets owner mode", func() {
		s.mockSessions.EXPECT().Load(gomock.Any()).Return(shared.Session{}, errors.New("disk I/O error"))
		s.mockGate.EXPECT().Reset(gomock.Any()).Return(nil)
		s.mockSessions.EXPECT().SaveLogin(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(s.T(), s.cmds.SignInLocal(context.Background(), "tok", "user-1"))
	})

	s.Run("failed reset stops the sign-in", func() {
		s.mockSessions.EXPECT().Load(gomock.Any()).Return(shared.Session{Token: "tok", UserID: "owner-user"}, nil)
		s.mockGate.EXPECT().Reset(gomock.Any()).Return(errs.ErrStorageFailure)

		err := s.cmds.SignInLocal(context.Background(), "tok", "user-2")
		assert.True(s.T(), errs.Is(err, errs.ErrStorageFailure))
	})

	s.Run("blank token is an invalid request", func() {
		err := s.cmds.SignInLocal(context.Background(), " ", "user-1")
		assert.True(s.T(), errs.Is(err, errs.ErrInvalidRequest))
	})
}

func (s *SessionCommandsTestSuite) TestSignInFederated() {
	s.Run("stores the federated session and the user id", func() {
		s.mockSessions.EXPECT().Load(gomock.Any()).Return(shared.Session{}, nil)
		s.mockGate.EXPECT().Reset(gomock.Any()).Return(nil)
		s.mockFederated.EXPECT().SignIn(gomock.Any(), "uid-1", "id-token", "refresh-token").Return(nil)
		s.mockSessions.EXPECT().SaveUserID(gomock.Any(), "uid-1").Return(nil)

		err := s.cmds.SignInFederated(context.Background(), commands.FederatedSignIn{
			UserID:       "uid-1",
			IDToken:      "id-token",
			RefreshToken: "refresh-token",
		})
		assert.NoError(s.T(), err)
	})

	s.Run("federated sign-in as another user resets owner mode", func() {
		gomock.InOrder(
			s.mockSessions.EXPECT().Load(gomock.Any()).Return(shared.Session{UserID: "uid-owner"}, nil),
			s.mockGate.EXPECT().Reset(gomock.Any()).Return(nil),
			s.mockFederated.EXPECT().SignIn(gomock.Any(), "uid-2", "id-token", "refresh-token").Return(nil),
			s.mockSessions.EXPECT().SaveUserID(gomock.Any(), "uid-2").Return(nil),
		)

		err := s.cmds.SignInFederated(context.Background(), commands.FederatedSignIn{
			UserID:       "uid-2",
			IDToken:      "id-token",
			RefreshToken: "refresh-token",
		})
		assert.NoError(s.T(), err)
	})

	s.Run("federated refresh for the same user keeps owner mode", func() {
		s.mockSessions.EXPECT().Load(gomock.Any()).Return(shared.Session{UserID: "uid-owner"}, nil)
		s.mockFederated.EXPECT().SignIn(gomock.Any(), "uid-owner", "id-token", "refresh-token").Return(nil)
		s.mockSessions.EXPECT().SaveUserID(gomock.Any(), "uid-owner").Return(nil)

		err := s.cmds.SignInFederated(context.Background(), commands.FederatedSignIn{
			UserID:       "uid-owner",
			IDToken:      "id-token",
			RefreshToken: "refresh-token",
		})
		assert.NoError(s.T(), err)
	})

	s.Run("missing refresh token is rejected", func() {
		err := s.cmds.SignInFederated(context.Background(), commands.FederatedSignIn{UserID: "uid-1", IDToken: "id-token"})
		assert.True(s.T(), errs.Is(err, errs.ErrInvalidRequest))
	})
}

func (s *SessionCommandsTestSuite) TestContinueAsGuest() {
	s.Run("reuses an existing guest marker", func() {
		s.mockSessions.EXPECT().Load(gomock.Any()).Return(shared.Session{GuestSessionID: "guest-1"}, nil)
		s.mockFederated.EXPECT().SignOut(gomock.Any()).Return(nil)
		s.mockSessions.EXPECT().SaveGuest(gomock.Any(), "guest-1").Return(nil)
		s.mockGate.EXPECT().Reset(gomock.Any()).Return(nil)

		id, err := s.cmds.ContinueAsGuest(context.Background())

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "guest-1", id)
	})

	s.Run("issues a new marker and tolerates a sign-out failure", func() {
		s.mockSessions.EXPECT().Load(gomock.Any()).Return(shared.Session{Token: "tok", UserID: "user-1"}, nil)
		s.mockFederated.EXPECT().SignOut(gomock.Any()).Return(errors.New("no session"))
		s.mockSessions.EXPECT().SaveGuest(gomock.Any(), gomock.Any()).Return(nil)
		s.mockGate.EXPECT().Reset(gomock.Any()).Return(nil)

		id, err := s.cmds.ContinueAsGuest(context.Background())

		require.NoError(s.T(), err)
		assert.Len(s.T(), id, 36)
	})
}

func (s *SessionCommandsTestSuite) TestLogout() {
	s.Run("clears the session and resets owner mode", func() {
		gomock.InOrder(
			s.mockFederated.EXPECT().SignOut(gomock.Any()).Return(nil),
			s.mockSessions.EXPECT().Clear(gomock.Any()).Return(nil),
			s.mockGate.EXPECT().Reset(gomock.Any()).Return(nil),
		)

		assert.NoError(s.T(), s.cmds.Logout(context.Background()))
	})

	s.Run("storage failure is surfaced", func() {
		s.mockFederated.EXPECT().SignOut(gomock.Any()).Return(nil)
		s.mockSessions.EXPECT().Clear(gomock.Any()).Return(errors.New("locked"))

		err := s.cmds.Logout(context.Background())
		assert.True(s.T(), errs.Is(err, errs.ErrStorageFailure))
	})
}
