package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/store"
	"savor-sync/internal/infra"
	"savor-sync/internal/infra/converter"
	"savor-sync/internal/pkg/errs"
)

const pathMyStore = "/store-management/my-store"

type StoreGateway struct {
	client *Client
	logger *slog.Logger
}

func NewStoreGateway(client *Client, logger *slog.Logger) *StoreGateway {
	return &StoreGateway{client: client, logger: logger}
}

type myStoreEnvelope struct {
	HasStore *bool                  `json:"hasStore"`
	Store    *converter.StoreRecord `json:"store"`
}

// MyStore maps 404 and empty bodies to "no store". Other failures are returned.
func (g *StoreGateway) MyStore(ctx context.Context, cred auth.Credential) (store.Ownership, error) {
	if cred.IsZero() {
		return store.NoStore(), errs.ErrUnauthenticated
	}

	body, err := g.client.do(ctx, call{
		method:  http.MethodGet,
		path:    pathMyStore,
		cred:    cred,
		failure: errs.ErrRemoteReadFailed,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return store.NoStore(), nil
		}
		return store.NoStore(), err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return store.NoStore(), nil
	}

	var env myStoreEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return store.NoStore(), g.client.malformed("decode my-store response", err, errs.ErrRemoteReadFailed)
	}
	if env.HasStore != nil && !*env.HasStore {
		return store.NoStore(), nil
	}
	if env.Store != nil {
		return ownershipFrom(converter.StoreRecordToDomain(*env.Store)), nil
	}

	var rec converter.StoreRecord
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return store.NoStore(), g.client.malformed("decode store record", err, errs.ErrRemoteReadFailed)
	}
	return ownershipFrom(converter.StoreRecordToDomain(rec)), nil
}

func ownershipFrom(info store.Info) store.Ownership {
	if info.ID == "" && info.Name == "" {
		return store.NoStore()
	}
	return store.Owns(info)
}

func sprintfPath(format, id string) string {
	return fmt.Sprintf(format, url.PathEscape(id))
}
