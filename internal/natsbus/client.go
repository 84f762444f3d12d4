package natsbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"ems-backend/internal/models"
)

const streamName = "EMS_EVENTS"

const (
	SubjectUserCreated     = "ems.users.created"
	SubjectUserUpdated     = "ems.users.updated"
	SubjectUserDeleted     = "ems.users.deleted"
	SubjectWorkCreated     = "ems.works.created"
	SubjectPaymentRecorded = "ems.payments.recorded"
)

// Publisher emits domain events after successful writes.
type Publisher interface {
	Publish(ctx context.Context, subject string, data map[string]any) error
}

// Noop drops every event. Used when NATS is not configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, map[string]any) error { return nil }

type Client struct {
	nc  *nats.Conn
	js  nats.JetStreamContext
	log *zap.Logger
	now func() time.Time
}

// Connect establishes the NATS connection and ensures the event stream exists.
func Connect(url string, log *zap.Logger) (*Client, error) {
	if url == "" {
		url = nats.DefaultURL
	}

	opts := []nats.Option{
		nats.Name("ems-backend"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(1 * time.Second),
		nats.ReconnectJitter(500*time.Millisecond, 2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info("NATS connection closed")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error("NATS error", zap.Error(err))
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	log.Info("connected to NATS", zap.String("url", nc.ConnectedUrl()))

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	if err := ensureStream(js, log); err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure stream: %w", err)
	}

	return &Client{nc: nc, js: js, log: log, now: time.Now}, nil
}

// Publish encodes an event envelope with msgpack and stores it in JetStream.
func (c *Client) Publish(ctx context.Context, subject string, data map[string]any) error {
	payload, id, err := encodeEvent(subject, data, c.now())
	if err != nil {
		return err
	}

	if _, err := c.js.Publish(subject, payload, nats.Context(ctx), nats.MsgId(id)); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains and closes the NATS connection.
func (c *Client) Close() error {
	return c.nc.Drain()
}

func encodeEvent(subject string, data map[string]any, now time.Time) ([]byte, string, error) {
	event := models.Event{
		V:    models.EventVersion,
		ID:   uuid.New().String(),
		TS:   now.UnixMilli(),
		Type: subject,
		Data: data,
	}
	payload, err := msgpack.Marshal(&event)
	if err != nil {
		return nil, "", fmt.Errorf("marshal event: %w", err)
	}
	return payload, event.ID, nil
}

func ensureStream(js nats.JetStreamContext, log *zap.Logger) error {
	_, err := js.StreamInfo(streamName)
	if errors.Is(err, nats.ErrStreamNotFound) {
		_, err = js.AddStream(&nats.StreamConfig{
			Name:       streamName,
			Subjects:   []string{"ems.>"},
			Retention:  nats.LimitsPolicy,
			MaxAge:     7 * 24 * time.Hour,
			MaxMsgSize: 1 * 1024 * 1024,
			Discard:    nats.DiscardOld,
			Storage:    nats.FileStorage,
			Duplicates: 2 * time.Minute,
		})
		if err != nil {
			return fmt.Errorf("create stream %s: %w", streamName, err)
		}
		log.Info("created JetStream stream", zap.String("stream", streamName))
	} else if err != nil {
		return fmt.Errorf("get stream info: %w", err)
	}
	return nil
}
