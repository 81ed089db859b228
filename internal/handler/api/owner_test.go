//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/domain/store"
	"savor-sync/internal/handler/api"
	resdto "savor-sync/internal/handler/dto/response"
	"savor-sync/internal/handler/middleware"
	"savor-sync/internal/pkg/errs"
	"savor-sync/tests/common/builder"
	"savor-sync/tests/common/httptest"
	commandsmock "savor-sync/tests/mock/commands"
	ownershipmock "savor-sync/tests/mock/ownership"
	queriesmock "savor-sync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OwnerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockGate     *ownershipmock.MockGate
	mockCommands *commandsmock.MockReservationCommands
	handler      *api.OwnerHandler
}

func (s *OwnerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGate = ownershipmock.NewMockGate(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.handler = api.NewOwnerHandler(s.mockGate, s.mockCommands)

	actors := middleware.NewActorMiddleware(queriesmock.NewMockSessionQueries(s.mockCtrl), s.mockGate)
	group := s.router.Group("/owner", actors.ResolveActor())
	group.GET("/state", s.handler.State)
	group.GET("/ownership", s.handler.Ownership)
	group.POST("/toggle", s.handler.Toggle)
	group.PUT("/reservations/:id/status", actors.RequireOwnerMode(), s.handler.UpdateStatus)
}

func (s *OwnerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OwnerHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestOwnerHandlerSuite(t *testing.T) {
	suite.Run(t, new(OwnerHandlerTestSuite))
}

var ownedStore = store.Info{ID: "s-1", Name: "Le Fournil"}

func (s *OwnerHandlerTestSuite) TestOwnership() {
	s.Run("success: owner with a store", func() {
		s.mockGate.EXPECT().CheckOwnership(gomock.Any(), auth.ActorAuthenticated).Return(store.Owns(ownedStore))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/ownership", nil, httptest.AsActor("authenticated"))

		var resp resdto.OwnershipResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		assert.True(s.T(), resp.HasStore)
		require.NotNil(s.T(), resp.StoreInfo)
		assert.Equal(s.T(), "s-1", resp.StoreInfo.ID)
	})

	s.Run("success: guest never owns a store", func() {
		s.mockGate.EXPECT().CheckOwnership(gomock.Any(), auth.ActorGuest).Return(store.NoStore())

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/ownership", nil, httptest.AsActor("guest"))

		assert.Equal(s.T(), http.StatusOK, rec.Code)
		assert.JSONEq(s.T(), `{"hasStore": false}`, rec.Body.String())
	})
}

func (s *OwnerHandlerTestSuite) TestToggle() {
	s.Run("success: enters owner mode", func() {
		s.mockGate.EXPECT().ToggleOwnerMode(gomock.Any(), auth.ActorAuthenticated).
			Return(store.OwnerState{IsStoreOwnerMode: true, HasStore: true, StoreInfo: &ownedStore}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owner/toggle", nil, httptest.AsActor("authenticated"))

		var resp resdto.OwnerStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		assert.True(s.T(), resp.IsStoreOwnerMode)
	})

	s.Run("error: storage failure", func() {
		s.mockGate.EXPECT().ToggleOwnerMode(gomock.Any(), auth.ActorAuthenticated).
			Return(store.OwnerState{}, errs.ErrStorageFailure)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owner/toggle", nil, httptest.AsActor("authenticated"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Local storage")
	})

	s.Run("state is readable without owner mode", func() {
		s.mockGate.EXPECT().State(gomock.Any()).Return(store.Reset(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/state", nil, httptest.AsActor("guest"))

		assert.Equal(s.T(), http.StatusOK, rec.Code)
		assert.JSONEq(s.T(), `{"isStoreOwnerMode": false, "hasStore": false}`, rec.Body.String())
	})
}

func (s *OwnerHandlerTestSuite) TestUpdateStatus() {
	url := "/owner/reservations/r-7/status"
	owner := httptest.AsActor("authenticated")
	body := map[string]any{"status": "picked_up", "currentStatus": "confirmed"}

	s.Run("success: marks a reservation picked up", func() {
		updated := builder.NewReservationBuilder().WithID("r-7").WithStatus(reservation.StatusPickedUp).BuildDomain()
		s.mockGate.EXPECT().RequireOwnerMode(gomock.Any()).Return(nil)
		s.mockCommands.EXPECT().
			TransitionStatus(gomock.Any(), "r-7", reservation.StatusConfirmed, reservation.StatusPickedUp).
			Return(updated, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, owner)

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		assert.Equal(s.T(), "picked_up", resp.Status)
		assert.Equal(s.T(), "picked_up", resp.OwnerStatus)
	})

	s.Run("error: guest is refused before owner mode is checked", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, httptest.AsActor("guest"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "signed-in store owner")
	})

	s.Run("error: owner mode off", func() {
		s.mockGate.EXPECT().RequireOwnerMode(gomock.Any()).Return(errs.ErrOwnerModeRequired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, owner)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Owner mode required")
	})

	s.Run("error: illegal transition is a conflict", func() {
		s.mockGate.EXPECT().RequireOwnerMode(gomock.Any()).Return(nil)
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), "r-7", gomock.Any(), gomock.Any()).
			Return(reservation.Reservation{}, reservation.ErrIllegalTransition)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"status": "cancelled", "currentStatus": "confirmed"}, owner)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not allowed")
	})

	s.Run("error: backend did not apply the change", func() {
		s.mockGate.EXPECT().RequireOwnerMode(gomock.Any()).Return(nil)
		s.mockCommands.EXPECT().TransitionStatus(gomock.Any(), "r-7", gomock.Any(), gomock.Any()).
			Return(reservation.Reservation{}, errs.Mark(errs.ErrRemoteWriteFailed, errs.ErrStatusUpdateFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, owner)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "did not take effect")
	})

	s.Run("error: missing current status", func() {
		s.mockGate.EXPECT().RequireOwnerMode(gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "picked_up"}, owner)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
