package gateway

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/infra/converter"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/shared"
)

const (
	pathReservations      = "/reservations"
	pathGuestReservations = "/reservations/guest"
	pathOwnerStatus       = "/store-owner/reservations/%s/status"
)

type ReservationGateway struct {
	client *Client
	logger *slog.Logger
}

func NewReservationGateway(client *Client, logger *slog.Logger) *ReservationGateway {
	return &ReservationGateway{client: client, logger: logger}
}

func (g *ReservationGateway) CreateGuest(ctx context.Context, req reservation.CreateRequest) (reservation.Reservation, error) {
	return g.create(ctx, pathGuestReservations, req, auth.Credential{}, true)
}

func (g *ReservationGateway) CreateAuthenticated(ctx context.Context, req reservation.CreateRequest, cred auth.Credential) (reservation.Reservation, error) {
	if cred.IsZero() {
		return reservation.Reservation{}, errs.ErrUnauthenticated
	}
	return g.create(ctx, pathReservations, req, cred, false)
}

func (g *ReservationGateway) create(ctx context.Context, path string, req reservation.CreateRequest, cred auth.Credential, guest bool) (reservation.Reservation, error) {
	payload, err := converter.CreatePayloadFrom(req)
	if err != nil {
		return reservation.Reservation{}, errs.Mark(err, errs.ErrRemoteWriteFailed)
	}

	body, err := g.client.do(ctx, call{
		method:         http.MethodPost,
		path:           path,
		body:           payload,
		cred:           cred,
		guest:          guest,
		idempotencyKey: req.ClientRequestID,
		failure:        errs.ErrRemoteWriteFailed,
	})
	if err != nil {
		return reservation.Reservation{}, err
	}

	created, err := DecodeReservation(body)
	if err != nil {
		return reservation.Reservation{}, g.client.malformed("decode created reservation", err, errs.ErrRemoteWriteFailed)
	}
	return created, nil
}

func (g *ReservationGateway) ListGuest(ctx context.Context) (shared.RemoteReservations, error) {
	return g.list(ctx, pathGuestReservations, auth.Credential{}, true)
}

func (g *ReservationGateway) ListAuthenticated(ctx context.Context, cred auth.Credential) (shared.RemoteReservations, error) {
	if cred.IsZero() {
		return shared.RemoteReservations{}, errs.ErrUnauthenticated
	}
	return g.list(ctx, pathReservations, cred, false)
}

func (g *ReservationGateway) list(ctx context.Context, path string, cred auth.Credential, guest bool) (shared.RemoteReservations, error) {
	body, err := g.client.do(ctx, call{
		method:  http.MethodGet,
		path:    path,
		cred:    cred,
		guest:   guest,
		failure: errs.ErrRemoteReadFailed,
	})
	if err != nil {
		return shared.RemoteReservations{}, err
	}

	list, err := DecodeList(body)
	if err != nil {
		return shared.RemoteReservations{}, g.client.malformed("decode reservation list", err, errs.ErrRemoteReadFailed)
	}
	g.logger.Debug("remote reservations fetched", "shape", string(list.Shape), "count", len(list.All()))
	return list, nil
}

// UpdateStatus accepts an empty response body; the caller then gets the id
// and the requested status back.
func (g *ReservationGateway) UpdateStatus(ctx context.Context, id string, status reservation.Status, cred auth.Credential) (reservation.Reservation, error) {
	if cred.IsZero() {
		return reservation.Reservation{}, errs.ErrUnauthenticated
	}

	body, err := g.client.do(ctx, call{
		method:  http.MethodPut,
		path:    sprintfPath(pathOwnerStatus, id),
		body:    converter.StatusPayload{Status: status.String()},
		cred:    cred,
		failure: errs.ErrStatusUpdateFailed,
	})
	if err != nil {
		return reservation.Reservation{}, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return reservation.Reservation{ID: id, Status: status, SyncState: reservation.SyncConfirmed}, nil
	}
	updated, err := DecodeReservation(body)
	if err != nil {
		return reservation.Reservation{}, g.client.malformed("decode updated reservation", err, errs.ErrStatusUpdateFailed)
	}
	return updated, nil
}

func (g *ReservationGateway) DeleteGuest(ctx context.Context, id string) error {
	_, err := g.client.do(ctx, call{
		method:  http.MethodDelete,
		path:    pathGuestReservations + "/" + url.PathEscape(id),
		guest:   true,
		failure: errs.ErrRemoteWriteFailed,
	})
	return err
}

func (g *ReservationGateway) Delete(ctx context.Context, id string, cred auth.Credential) error {
	if cred.IsZero() {
		return errs.ErrUnauthenticated
	}
	_, err := g.client.do(ctx, call{
		method:  http.MethodDelete,
		path:    pathReservations + "/" + url.PathEscape(id),
		cred:    cred,
		failure: errs.ErrRemoteWriteFailed,
	})
	return err
}
