package hrapi

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/hr-gateway/internal/core/domain/message"
	"github.com/avatarctic/hr-gateway/internal/core/ports"
)

const pingInterval = 30 * time.Second

type EventListenerConfig struct {
	URL          string
	Token        string
	ReconnectMin time.Duration
	ReconnectMax time.Duration
}

// EventListener subscribes to the HR API event stream and passes every
// decoded event to a handler.
type EventListener struct {
	cfg     EventListenerConfig
	dialer  *websocket.Dialer
	handler ports.EventHandler
	logger  *logrus.Logger
}

func NewEventListener(cfg *EventListenerConfig, handler ports.EventHandler, logger *logrus.Logger) *EventListener {
	if logger == nil {
		logger = logrus.New()
	}
	c := *cfg
	if c.ReconnectMin <= 0 {
		c.ReconnectMin = time.Second
	}
	if c.ReconnectMax < c.ReconnectMin {
		c.ReconnectMax = c.ReconnectMin
	}
	return &EventListener{
		cfg:     c,
		dialer:  &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		handler: handler,
		logger:  logger,
	}
}

// Run keeps a subscription open until ctx is done, redialing with capped
// exponential backoff. It always returns ctx.Err().
func (l *EventListener) Run(ctx context.Context) error {
	var attempt int
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		connected, err := l.listen(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if connected {
			attempt = 0
		}
		wait := backoff(attempt, l.cfg.ReconnectMin, l.cfg.ReconnectMax)
		l.logger.WithFields(logrus.Fields{"url": l.cfg.URL, "attempt": attempt, "backoff": wait}).
			WithError(err).Warn("hr event stream disconnected")
		attempt++

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// listen handles one connection. connected reports whether the dial succeeded.
func (l *EventListener) listen(ctx context.Context) (connected bool, err error) {
	header := http.Header{}
	if l.cfg.Token != "" {
		header.Set("Authorization", "Bearer "+l.cfg.Token)
	}
	conn, res, err := l.dialer.DialContext(ctx, l.cfg.URL, header)
	if err != nil {
		if res != nil {
			return false, fmt.Errorf("dialing event stream: %w (status %d)", err, res.StatusCode)
		}
		return false, fmt.Errorf("dialing event stream: %w", err)
	}
	defer conn.Close()
	l.logger.WithField("url", l.cfg.URL).Info("hr event stream connected")

	done := make(chan struct{})
	defer close(done)
	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				// unblocks ReadMessage
				_ = conn.Close()
				return
			case <-t.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
					l.logger.WithError(err).Debug("hr event stream ping failed")
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return true, fmt.Errorf("reading event stream: %w", err)
		}

		var evt message.Event
		if err := json.Unmarshal(data, &evt); err != nil {
			l.logger.WithError(err).Warn("dropping undecodable hr event")
			continue
		}
		if err := l.handler.HandleEvent(ctx, &evt); err != nil {
			l.logger.WithFields(logrus.Fields{"type": evt.Type, "conversation_id": evt.ConversationID}).
				WithError(err).Error("failed to handle hr event")
		}
	}
}

// backoff returns lo*2^attempt capped at hi, with up to 20% jitter removed.
func backoff(attempt int, lo, hi time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := lo
	for i := 0; i < attempt && d < hi; i++ {
		d *= 2
	}
	if d > hi {
		d = hi
	}
	if jitter := int64(d) / 5; jitter > 0 {
		d -= time.Duration(rand.Int63n(jitter))
	}
	return d
}
