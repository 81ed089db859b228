//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/handler/api"
	resdto "savor-sync/internal/handler/dto/response"
	"savor-sync/internal/handler/middleware"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/commands"
	"savor-sync/internal/usecase/queries"
	"savor-sync/tests/common/builder"
	"savor-sync/tests/common/httptest"
	"savor-sync/tests/common/testutil"
	commandsmock "savor-sync/tests/mock/commands"
	ownershipmock "savor-sync/tests/mock/ownership"
	queriesmock "savor-sync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	mockSessions *queriesmock.MockSessionQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockSessions = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	actors := middleware.NewActorMiddleware(s.mockSessions, ownershipmock.NewMockGate(s.mockCtrl))
	group := s.router.Group("/reservations", actors.ResolveActor())
	group.POST("", s.handler.Create)
	group.GET("", s.handler.List)
	group.GET("/grouped", s.handler.ListGrouped)
	group.POST("/sync", s.handler.Sync)
	group.DELETE("/:id", s.handler.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	guest := httptest.AsActor("guest")

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	confirmed := builder.NewReservationBuilder().BuildDomain()

	validation := []testCaseReservation{
		{name: "missing field: storeId (required)", mutate: testutil.Field("storeId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: quantity (required)", mutate: testutil.Field("quantity", nil), expectCode: http.StatusBadRequest},
		{name: "quantity boundary invalid (0)", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest},
		{name: "negative original price", mutate: testutil.Field("originalPrice", -1), expectCode: http.StatusBadRequest},
		{name: "quantity as string", mutate: testutil.Field("quantity", "two"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with the confirmed reservation", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), auth.ActorGuest).
			DoAndReturn(func(_ any, req reservation.CreateRequest, _ auth.ActorClass) (reservation.Reservation, error) {
				assert.Equal(s.T(), "Camille Martin", req.Contact.Name)
				assert.Equal(s.T(), reqBody.ClientRequestID, req.ClientRequestID)
				return confirmed, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guest)

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		assert.Equal(s.T(), confirmed.ID, resp.ID)
		assert.Equal(s.T(), "confirmed", resp.SyncState)
		assert.False(s.T(), resp.IsLocalOnly)
		assert.Equal(s.T(), "Confirmed", resp.StatusBadge.Label)
	})

	s.Run("success: queued locally is still 201 and flagged", func() {
		local := builder.NewReservationBuilder().AsLocal("local_1741953600000").BuildDomain()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), auth.ActorGuest).Return(local, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guest)

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		assert.Equal(s.T(), "local_1741953600000", resp.ID)
		assert.Equal(s.T(), "pending_local_only", resp.SyncState)
		assert.True(s.T(), resp.IsLocalOnly)
	})

	s.Run("success: customer-prefixed contact names are accepted", func() {
		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("name", nil),
			testutil.Field("phone", nil),
			testutil.Field("customerName", "Ana"),
			testutil.Field("phoneNumber", "0612345678"),
		)
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req reservation.CreateRequest, _ auth.ActorClass) (reservation.Reservation, error) {
				assert.Equal(s.T(), reservation.ContactInfo{Name: "Ana", Email: "camille@example.com", Phone: "0612345678"}, req.Contact)
				return confirmed, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, guest)

		assert.Equal(s.T(), http.StatusCreated, rec.Code)
	})

	s.Run("success: idempotency key header overrides the body", func() {
		key := "0d1e4c9a-6f3b-4b2a-8c7d-9e8f7a6b5c4d"
		headers := map[string]string{"X-Actor-Class": "guest", "Idempotency-Key": key}
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req reservation.CreateRequest, _ auth.ActorClass) (reservation.Reservation, error) {
				assert.Equal(s.T(), key, req.ClientRequestID)
				return confirmed, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, headers)

		assert.Equal(s.T(), http.StatusCreated, rec.Code)
	})

	s.Run("error: malformed idempotency key", func() {
		headers := map[string]string{"X-Actor-Class": "guest", "Idempotency-Key": "not-a-uuid"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, headers)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key")
	})

	s.Run("error: unknown actor class", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, httptest.AsActor("owner"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid actor class")
	})

	s.Run("actor falls back to the persisted session", func() {
		s.mockSessions.EXPECT().Current(gomock.Any()).Return(&queries.SessionView{Actor: auth.ActorAuthenticated}, nil)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), auth.ActorAuthenticated).Return(confirmed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		assert.Equal(s.T(), http.StatusCreated, rec.Code)
	})

	for _, group := range [][]testCaseReservation{validation} {
		for _, tc := range group {
			s.Run("validation: "+tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, guest)
				assert.Equal(s.T(), tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	}

	s.Run("error: invalid contact maps to 400 with reason", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reservation.Reservation{}, errs.Mark(reservation.ErrInvalidPhone, errs.ErrInvalidContactInfo))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guest)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid contact info")
		assert.Contains(s.T(), rec.Body.String(), reservation.ErrInvalidPhone.Error())
	})

	s.Run("error: authenticated create without credential", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), auth.ActorAuthenticated).
			Return(reservation.Reservation{}, errs.ErrUnauthenticated)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, httptest.AsActor("authenticated"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Sign-in required")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: flat list with count", func() {
		records := []reservation.Reservation{
			builder.NewReservationBuilder().WithID("r-1").BuildDomain(),
			builder.NewReservationBuilder().AsLocal("local_1").BuildDomain(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), auth.ActorGuest).Return(records, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, httptest.AsActor("guest"))

		var resp resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		require.Len(s.T(), resp.Reservations, 2)
		assert.Equal(s.T(), 2, resp.Count)
		assert.True(s.T(), resp.Reservations[1].IsLocalOnly)
	})

	s.Run("success: empty list is an array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), auth.ActorGuest).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, httptest.AsActor("guest"))

		assert.Equal(s.T(), http.StatusOK, rec.Code)
		assert.JSONEq(s.T(), `{"reservations": [], "count": 0}`, rec.Body.String())
	})

	s.Run("success: grouped view in french", func() {
		view := &queries.GroupedView{
			Current:      []reservation.Reservation{builder.NewReservationBuilder().BuildDomain()},
			Past:         []reservation.Reservation{},
			CurrentCount: 1,
		}
		s.mockQueries.EXPECT().ListGrouped(gomock.Any(), auth.ActorGuest).Return(view, nil)
		headers := map[string]string{"X-Actor-Class": "guest", "Accept-Language": "fr"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/grouped", nil, headers)

		var resp resdto.GroupedReservationsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		require.Len(s.T(), resp.CurrentReservations, 1)
		assert.Equal(s.T(), "Confirmée", resp.CurrentReservations[0].StatusBadge.Label)
		assert.NotNil(s.T(), resp.PastReservations)
		assert.Equal(s.T(), 1, resp.CurrentCount)
	})
}

// ================================================================================
// TestDelete / TestSync
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "r-1", auth.ActorGuest).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/r-1", nil, httptest.AsActor("guest"))

		assert.Equal(s.T(), http.StatusNoContent, rec.Code)
	})

	s.Run("error: local-only reservation is a conflict", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "local_1", auth.ActorGuest).Return(errs.ErrLocalOnlyReservation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/local_1", nil, httptest.AsActor("guest"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not reached the server")
	})

	s.Run("error: backend rejection is a bad gateway", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "r-2", auth.ActorGuest).Return(errs.ErrRemoteWriteFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/r-2", nil, httptest.AsActor("guest"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Backend rejected")
	})
}

func (s *ReservationHandlerTestSuite) TestSync() {
	s.Run("success: reports synced and remaining", func() {
		result := &commands.ResyncResult{
			Attempted: 2,
			Synced:    []reservation.Reservation{builder.NewReservationBuilder().WithID("r-new").BuildDomain()},
			Remaining: []reservation.Reservation{builder.NewReservationBuilder().AsLocal("local_2").BuildDomain()},
		}
		s.mockCommands.EXPECT().Resync(gomock.Any(), auth.ActorAuthenticated).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/sync", nil, httptest.AsActor("authenticated"))

		var resp resdto.ResyncResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		assert.Equal(s.T(), 2, resp.Attempted)
		require.Len(s.T(), resp.Synced, 1)
		assert.Equal(s.T(), "r-new", resp.Synced[0].ID)
		require.Len(s.T(), resp.Remaining, 1)
		assert.True(s.T(), resp.Remaining[0].IsLocalOnly)
	})

	s.Run("error: storage failure", func() {
		s.mockCommands.EXPECT().Resync(gomock.Any(), auth.ActorGuest).Return(nil, errs.ErrStorageFailure)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/sync", nil, httptest.AsActor("guest"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Local storage")
	})
}
