//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/infra"
	"savor-sync/internal/infra/gateway"
	"savor-sync/internal/pkg/config"
	"savor-sync/internal/pkg/cookie"
	"savor-sync/internal/pkg/errs"
	"savor-sync/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fixedGuestSession string

func (f fixedGuestSession) GuestSessionID(context.Context) (string, bool) {
	return string(f), f != ""
}

// recorded is what the fake backend saw on its last request.
type recorded struct {
	mu             sync.Mutex
	authorization  string
	idempotencyKey string
	guestCookie    string
	body           map[string]any
}

func (r *recorded) capture(c *gin.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authorization = c.GetHeader("Authorization")
	r.idempotencyKey = c.GetHeader(gateway.IdempotencyKeyHeader)
	r.guestCookie, _ = c.Cookie(cookie.GuestSessionCookieName)
	r.body = nil
	if c.Request.ContentLength > 0 {
		_ = json.NewDecoder(c.Request.Body).Decode(&r.body)
	}
}

type ReservationGatewayTestSuite struct {
	suite.Suite
	backend  *gin.Engine
	server   *httptest.Server
	seen     *recorded
	gateway  *gateway.ReservationGateway
	stores   *gateway.StoreGateway
	cred     auth.Credential
	handlers map[string]gin.HandlerFunc
}

func (s *ReservationGatewayTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.seen = &recorded{}
	s.handlers = map[string]gin.HandlerFunc{}
	s.backend = gin.New()

	route := func(method, path string) {
		key := method + " " + path
		s.backend.Handle(method, path, func(c *gin.Context) {
			s.seen.capture(c)
			h, ok := s.handlers[key]
			if !ok {
				c.JSON(http.StatusNotImplemented, gin.H{"error": "no handler for " + key})
				return
			}
			h(c)
		})
	}
	route(http.MethodPost, "/reservations")
	route(http.MethodPost, "/reservations/guest")
	route(http.MethodGet, "/reservations")
	route(http.MethodGet, "/reservations/guest")
	route(http.MethodDelete, "/reservations/:id")
	route(http.MethodDelete, "/reservations/guest/:id")
	route(http.MethodPut, "/store-owner/reservations/:id/status")
	route(http.MethodGet, "/store-management/my-store")

	s.server = httptest.NewServer(s.backend)

	cfg := config.NewTestConfig()
	cfg.Backend.BaseURL = s.server.URL
	logger := slog.New(slog.DiscardHandler)
	client, err := gateway.NewClient(cfg, fixedGuestSession("guest-123"), logger)
	require.NoError(s.T(), err)
	s.gateway = gateway.NewReservationGateway(client, logger)
	s.stores = gateway.NewStoreGateway(client, logger)

	s.cred, err = auth.NewLocalSessionToken("session-token")
	require.NoError(s.T(), err)
}

func (s *ReservationGatewayTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ReservationGatewayTestSuite) SetupSubTest() {
	s.TearDownTest()
	s.SetupTest()
}

func TestReservationGatewaySuite(t *testing.T) {
	suite.Run(t, new(ReservationGatewayTestSuite))
}

func (s *ReservationGatewayTestSuite) on(method, path string, h gin.HandlerFunc) {
	s.handlers[method+" "+path] = h
}

func (s *ReservationGatewayTestSuite) TestCreate() {
	req := builder.NewReservationBuilder().BuildCreateRequest()

	s.Run("guest create sends the guest cookie and idempotency key", func() {
		s.on(http.MethodPost, "/reservations/guest", func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"id": "r-1", "status": "pending", "quantity": 2, "totalAmount": 11.98})
		})

		got, err := s.gateway.CreateGuest(context.Background(), req)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "r-1", got.ID)
		assert.Equal(s.T(), reservation.SyncConfirmed, got.SyncState)
		assert.Equal(s.T(), "guest-123", s.seen.guestCookie)
		assert.Empty(s.T(), s.seen.authorization)
		assert.Equal(s.T(), req.ClientRequestID, s.seen.idempotencyKey)
		assert.Equal(s.T(), 11.98, s.seen.body["totalAmount"])
		assert.Equal(s.T(), "Camille Martin", s.seen.body["customerName"])
		assert.Equal(s.T(), req.ClientRequestID, s.seen.body["clientRequestId"])
	})

	s.Run("authenticated create sends the bearer token", func() {
		s.on(http.MethodPost, "/reservations", func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"reservation": gin.H{"_id": "r-2"}})
		})

		got, err := s.gateway.CreateAuthenticated(context.Background(), req, s.cred)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "r-2", got.ID)
		assert.Equal(s.T(), "Bearer session-token", s.seen.authorization)
		assert.Empty(s.T(), s.seen.guestCookie)
	})

	s.Run("authenticated create without a credential fails fast", func() {
		_, err := s.gateway.CreateAuthenticated(context.Background(), req, auth.Credential{})
		assert.True(s.T(), errs.Is(err, errs.ErrUnauthenticated))
	})

	s.Run("error status is a remote write failure", func() {
		s.on(http.MethodPost, "/reservations/guest", func(c *gin.Context) {
			c.JSON(http.StatusConflict, gin.H{"error": "sold out"})
		})

		_, err := s.gateway.CreateGuest(context.Background(), req)

		require.Error(s.T(), err)
		assert.True(s.T(), errs.Is(err, errs.ErrRemoteWriteFailed))
		assert.True(s.T(), infra.IsKind(err, infra.KindUpstreamStatus))
		assert.Contains(s.T(), err.Error(), "sold out")
	})

	s.Run("unparseable body is malformed and a write failure", func() {
		s.on(http.MethodPost, "/reservations/guest", func(c *gin.Context) {
			c.String(http.StatusOK, "<html>gateway</html>")
		})

		_, err := s.gateway.CreateGuest(context.Background(), req)

		assert.True(s.T(), errs.Is(err, errs.ErrRemoteWriteFailed))
		assert.True(s.T(), errs.Is(err, errs.ErrMalformedResponse))
	})

	s.Run("unreachable backend is a transport write failure", func() {
		s.server.Close()

		_, err := s.gateway.CreateGuest(context.Background(), req)

		assert.True(s.T(), errs.Is(err, errs.ErrRemoteWriteFailed))
		assert.True(s.T(), infra.IsKind(err, infra.KindTransport))
	})
}

func (s *ReservationGatewayTestSuite) TestList() {
	s.Run("guest list normalizes the partitioned shape", func() {
		s.on(http.MethodGet, "/reservations/guest", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json",
				[]byte(`{"currentReservations": null, "pastReservations": [{"id": "p1", "status": "expired"}], "currentCount": 0, "pastCount": 1}`))
		})

		got, err := s.gateway.ListGuest(context.Background())

		require.NoError(s.T(), err)
		assert.NotNil(s.T(), got.Current)
		assert.Empty(s.T(), got.Current)
		require.Len(s.T(), got.Past, 1)
		assert.Equal(s.T(), reservation.StatusExpired, got.Past[0].Status)
		assert.Equal(s.T(), "guest-123", s.seen.guestCookie)
	})

	s.Run("authenticated list accepts a flat array", func() {
		s.on(http.MethodGet, "/reservations", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json", []byte(`[{"id": "a"}, {"id": "b"}]`))
		})

		got, err := s.gateway.ListAuthenticated(context.Background(), s.cred)

		require.NoError(s.T(), err)
		assert.Len(s.T(), got.All(), 2)
		assert.Equal(s.T(), "Bearer session-token", s.seen.authorization)
	})

	s.Run("server error is a read failure", func() {
		s.on(http.MethodGet, "/reservations/guest", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "boom"})
		})

		_, err := s.gateway.ListGuest(context.Background())

		assert.True(s.T(), errs.Is(err, errs.ErrRemoteReadFailed))
	})

	s.Run("unknown shape is a malformed read failure", func() {
		s.on(http.MethodGet, "/reservations/guest", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"items": []string{}})
		})

		_, err := s.gateway.ListGuest(context.Background())

		assert.True(s.T(), errs.Is(err, errs.ErrRemoteReadFailed))
		assert.True(s.T(), errs.Is(err, errs.ErrMalformedResponse))
	})
}

func (s *ReservationGatewayTestSuite) TestUpdateStatus() {
	s.Run("sends the status and decodes the updated record", func() {
		s.on(http.MethodPut, "/store-owner/reservations/:id/status", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": "picked_up"})
		})

		got, err := s.gateway.UpdateStatus(context.Background(), "r-5", reservation.StatusPickedUp, s.cred)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "r-5", got.ID)
		assert.Equal(s.T(), reservation.StatusPickedUp, got.Status)
		assert.Equal(s.T(), "picked_up", s.seen.body["status"])
	})

	s.Run("empty body echoes the request", func() {
		s.on(http.MethodPut, "/store-owner/reservations/:id/status", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		got, err := s.gateway.UpdateStatus(context.Background(), "r-6", reservation.StatusPickedUp, s.cred)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "r-6", got.ID)
		assert.Equal(s.T(), reservation.StatusPickedUp, got.Status)
	})

	s.Run("rejection is a status update failure", func() {
		s.on(http.MethodPut, "/store-owner/reservations/:id/status", func(c *gin.Context) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not your store"})
		})

		_, err := s.gateway.UpdateStatus(context.Background(), "r-7", reservation.StatusPickedUp, s.cred)

		assert.True(s.T(), errs.Is(err, errs.ErrStatusUpdateFailed))
	})
}

func (s *ReservationGatewayTestSuite) TestDelete() {
	s.Run("guest delete escapes the id and sends the cookie", func() {
		var gotID string
		s.on(http.MethodDelete, "/reservations/guest/:id", func(c *gin.Context) {
			gotID = c.Param("id")
			c.Status(http.StatusNoContent)
		})

		require.NoError(s.T(), s.gateway.DeleteGuest(context.Background(), "r 8"))
		assert.Equal(s.T(), "r 8", gotID)
		assert.Equal(s.T(), "guest-123", s.seen.guestCookie)
	})

	s.Run("missing reservation is a not-found write failure", func() {
		s.on(http.MethodDelete, "/reservations/:id", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})

		err := s.gateway.Delete(context.Background(), "r-9", s.cred)

		assert.True(s.T(), errs.Is(err, errs.ErrRemoteWriteFailed))
		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *ReservationGatewayTestSuite) TestMyStore() {
	s.Run("store record is ownership", func() {
		s.on(http.MethodGet, "/store-management/my-store", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"_id": "s-1", "storeName": "Le Fournil", "image": "https://img/1.png"})
		})

		got, err := s.stores.MyStore(context.Background(), s.cred)

		require.NoError(s.T(), err)
		require.True(s.T(), got.HasStore)
		assert.Equal(s.T(), "s-1", got.StoreInfo.ID)
		assert.Equal(s.T(), "Le Fournil", got.StoreInfo.Name)
		assert.Equal(s.T(), "https://img/1.png", got.StoreInfo.ImageURL)
	})

	s.Run("envelope with hasStore false", func() {
		s.on(http.MethodGet, "/store-management/my-store", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"hasStore": false})
		})

		got, err := s.stores.MyStore(context.Background(), s.cred)

		require.NoError(s.T(), err)
		assert.False(s.T(), got.HasStore)
	})

	s.Run("envelope with a store", func() {
		s.on(http.MethodGet, "/store-management/my-store", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"hasStore": true, "store": gin.H{"id": "s-2", "name": "Chez Paul"}})
		})

		got, err := s.stores.MyStore(context.Background(), s.cred)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), "s-2", got.StoreInfo.ID)
	})

	s.Run("404 means no store", func() {
		s.on(http.MethodGet, "/store-management/my-store", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no store"})
		})

		got, err := s.stores.MyStore(context.Background(), s.cred)

		require.NoError(s.T(), err)
		assert.False(s.T(), got.HasStore)
	})

	s.Run("other failures are returned", func() {
		s.on(http.MethodGet, "/store-management/my-store", func(c *gin.Context) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream"})
		})

		_, err := s.stores.MyStore(context.Background(), s.cred)

		assert.True(s.T(), errs.Is(err, errs.ErrRemoteReadFailed))
	})
}
