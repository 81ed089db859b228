package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"savor-sync/internal/pkg/config"
	"savor-sync/internal/usecase/shared"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const mqttQoS = 1

type MQTTPublisher struct {
	client  mqtt.Client
	prefix  string
	timeout time.Duration
	logger  *slog.Logger
}

func NewMQTTPublisher(cfg config.EventsConfig, logger *slog.Logger) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(cfg.MQTTTimeout).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warn("mqtt connection lost", "error", err)
		})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(cfg.MQTTTimeout) {
		return nil, fmt.Errorf("mqtt: connect to %s timed out", cfg.MQTTBroker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect to %s: %w", cfg.MQTTBroker, err)
	}
	logger.Info("mqtt event publisher connected", "broker", cfg.MQTTBroker, "topic_prefix", cfg.MQTTTopicPrefix)

	return &MQTTPublisher{
		client:  client,
		prefix:  cfg.MQTTTopicPrefix,
		timeout: cfg.MQTTTimeout,
		logger:  logger,
	}, nil
}

func (p *MQTTPublisher) Publish(ctx context.Context, event shared.Event) error {
	payload, err := encode(event)
	if err != nil {
		return err
	}
	topic := Topic(p.prefix, event.Type)

	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	token := p.client.Publish(topic, mqttQoS, false, payload)
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt: publish to %s: %w", topic, err)
	}
	return nil
}

func (p *MQTTPublisher) Close() error {
	p.client.Disconnect(250)
	return nil
}
