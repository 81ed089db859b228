// Package events publishes reservation lifecycle events for other device
// components. Delivery is best effort.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"savor-sync/internal/pkg/config"
	"savor-sync/internal/usecase/shared"
)

// Publisher is an EventPublisher that owns a connection.
type Publisher interface {
	shared.EventPublisher
	Close() error
}

// NewPublisher selects the publisher named by EVENTS_DRIVER.
func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) (Publisher, error) {
	switch cfg.Driver {
	case config.EventsDriverMQTT:
		return NewMQTTPublisher(cfg, logger)
	case config.EventsDriverAMQP:
		return NewAMQPPublisher(cfg, logger)
	default:
		return NewLogPublisher(logger), nil
	}
}

func encode(event shared.Event) ([]byte, error) {
	return json.Marshal(event)
}

// Topic maps "reservation.created" under prefix "savor/reservations" to
// "savor/reservations/reservation/created".
func Topic(prefix string, eventType shared.EventType) string {
	suffix := strings.ReplaceAll(string(eventType), ".", "/")
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		return suffix
	}
	return prefix + "/" + suffix
}

// LogPublisher only writes the event to the log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event shared.Event) error {
	p.logger.InfoContext(ctx, "reservation event",
		"type", string(event.Type),
		"reservation_id", event.ReservationID,
		"actor", event.Actor.String(),
		"status", event.Status,
		"sync_state", event.SyncState,
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
