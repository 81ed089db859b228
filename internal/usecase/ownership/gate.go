package ownership

import (
	"context"
	"log/slog"
	"strconv"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/store"
	"savor-sync/internal/pkg/clock"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/shared"
)

//go:generate mockgen -source=gate.go -destination=../../../tests/mock/ownership/gate_mock.go -package=ownershipmock

type Gate interface {
	CheckOwnership(ctx context.Context, actor auth.ActorClass) store.Ownership
	ToggleOwnerMode(ctx context.Context, actor auth.ActorClass) (store.OwnerState, error)
	State(ctx context.Context) (store.OwnerState, error)
	RequireOwnerMode(ctx context.Context) error
	Reset(ctx context.Context) error
}

type gateImpl struct {
	resolver  shared.CredentialResolver
	stores    shared.StoreGateway
	states    shared.OwnerStateStore
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewGate(
	resolver shared.CredentialResolver,
	stores shared.StoreGateway,
	states shared.OwnerStateStore,
	publisher shared.EventPublisher,
	clock clock.Clock,
	logger *slog.Logger,
) Gate {
	return &gateImpl{
		resolver:  resolver,
		stores:    stores,
		states:    states,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// CheckOwnership never fails: any error means the actor owns no store.
// The result is cached in the persisted owner state.
func (g *gateImpl) CheckOwnership(ctx context.Context, actor auth.ActorClass) store.Ownership {
	ownership := g.lookup(ctx, actor)

	state, err := g.states.LoadOwnerState(ctx)
	if err != nil {
		g.logger.Warn("failed to load owner state", "error", err)
		state = store.Reset()
	}
	if err := g.states.SaveOwnerState(ctx, state.WithOwnership(ownership)); err != nil {
		g.logger.Error("failed to cache store ownership", "error", err)
	}
	return ownership
}

func (g *gateImpl) lookup(ctx context.Context, actor auth.ActorClass) store.Ownership {
	if actor != auth.ActorAuthenticated {
		return store.NoStore()
	}
	cred, ok := g.resolver.Resolve(ctx)
	if !ok {
		return store.NoStore()
	}
	ownership, err := g.stores.MyStore(ctx, cred)
	if err != nil {
		g.logger.Debug("store lookup failed, treating as no store", "error", err)
		return store.NoStore()
	}
	return ownership
}

func (g *gateImpl) ToggleOwnerMode(ctx context.Context, actor auth.ActorClass) (store.OwnerState, error) {
	state, err := g.states.LoadOwnerState(ctx)
	if err != nil {
		return store.OwnerState{}, errs.Mark(errs.Wrap(err, "load owner state"), errs.ErrStorageFailure)
	}
	wasOn := state.IsStoreOwnerMode

	switch {
	case state.IsStoreOwnerMode:
		state.IsStoreOwnerMode = false
	case actor != auth.ActorAuthenticated:
		state = store.Reset()
	default:
		if !state.CanEnterOwnerMode() {
			state = state.WithOwnership(g.lookup(ctx, actor))
		}
		state.IsStoreOwnerMode = state.CanEnterOwnerMode()
	}

	if err := g.states.SaveOwnerState(ctx, state); err != nil {
		return store.OwnerState{}, errs.Mark(errs.Wrap(err, "save owner state"), errs.ErrStorageFailure)
	}
	if wasOn != state.IsStoreOwnerMode {
		g.publishModeChange(ctx, state.IsStoreOwnerMode)
	}
	return state, nil
}

func (g *gateImpl) State(ctx context.Context) (store.OwnerState, error) {
	state, err := g.states.LoadOwnerState(ctx)
	if err != nil {
		return store.OwnerState{}, errs.Mark(errs.Wrap(err, "load owner state"), errs.ErrStorageFailure)
	}
	return state, nil
}

func (g *gateImpl) RequireOwnerMode(ctx context.Context) error {
	state, err := g.State(ctx)
	if err != nil {
		return err
	}
	if !state.IsStoreOwnerMode || !state.HasStore {
		return errs.ErrOwnerModeRequired
	}
	return nil
}

// Reset clears the flag and the ownership cache.
func (g *gateImpl) Reset(ctx context.Context) error {
	prev, loadErr := g.states.LoadOwnerState(ctx)
	if err := g.states.SaveOwnerState(ctx, store.Reset()); err != nil {
		return errs.Mark(errs.Wrap(err, "reset owner state"), errs.ErrStorageFailure)
	}
	if loadErr == nil && prev.IsStoreOwnerMode {
		g.publishModeChange(ctx, false)
	}
	return nil
}

func (g *gateImpl) publishModeChange(ctx context.Context, enabled bool) {
	event := shared.Event{
		Type:       shared.EventOwnerModeChanged,
		Attributes: map[string]string{"isStoreOwnerMode": strconv.FormatBool(enabled)},
		OccurredAt: g.clock.Now().UTC(),
	}
	if err := g.publisher.Publish(ctx, event); err != nil {
		g.logger.Warn("failed to publish owner mode change", "error", err)
	}
}
