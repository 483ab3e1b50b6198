package cometbft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/photonscan/internal/pkg/logger"
	"github.com/gabapcia/photonscan/internal/pkg/resilience/retry"
	"github.com/gabapcia/photonscan/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	newBlockQuery            = "tm.event='NewBlock'"
	defaultHeightsBufferSize = 1
	writeTimeout             = 10 * time.Second
)

var ErrSubscriptionRejected = errors.New("subscription rejected")

// subscriber streams new block heights from the CometBFT /websocket
// endpoint, reconnecting when the connection drops.
type subscriber struct {
	endpoint   string
	dialer     *websocket.Dialer
	retry      retry.Retry
	bufferSize int
}

// WebsocketURL maps an RPC endpoint to its websocket endpoint.
func WebsocketURL(rpcEndpoint string) (string, error) {
	u, err := url.Parse(rpcEndpoint)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "https", "wss":
		u.Scheme = "wss"
	case "http", "ws":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if !strings.HasSuffix(u.Path, "/websocket") {
		u.Path = strings.TrimSuffix(u.Path, "/") + "/websocket"
	}
	return u.String(), nil
}

// SubscribeNewBlocks dials the node and returns a channel of new block
// heights. Only the latest height is kept when the consumer lags. The
// channel is closed when ctx is done or reconnecting gives up.
func (s *subscriber) SubscribeNewBlocks(ctx context.Context) (<-chan int64, error) {
	conn, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	heightsCh := make(chan int64, s.bufferSize)
	go func() {
		defer close(heightsCh)

		for {
			err := s.read(ctx, conn, heightsCh)
			if ctx.Err() != nil {
				return
			}

			logger.Warn(ctx, "new block subscription dropped", "error", err)

			conn, err = s.reconnect(ctx)
			if err != nil {
				logger.Error(ctx, "new block subscription lost", "error", err)
				return
			}
		}
	}()

	return heightsCh, nil
}

func (s *subscriber) reconnect(ctx context.Context) (*websocket.Conn, error) {
	var conn *websocket.Conn
	err := s.retry.Execute(ctx, func() error {
		var err error
		conn, err = s.connect(ctx)
		return err
	})
	return conn, err
}

func (s *subscriber) connect(ctx context.Context) (*websocket.Conn, error) {
	conn, _, err := s.dialer.DialContext(ctx, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", s.endpoint, err)
	}

	request := map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  "subscribe",
		"params":  map[string]any{"query": newBlockQuery},
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(request); err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	return conn, nil
}

// read consumes messages until the connection fails or ctx is done.
func (s *subscriber) read(ctx context.Context, conn *websocket.Conn, heightsCh chan int64) error {
	var once sync.Once
	closeConn := func() { once.Do(func() { conn.Close() }) }
	defer closeConn()

	stop := context.AfterFunc(ctx, closeConn)
	defer stop()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return err
		}

		if msg.Error != nil {
			return fmt.Errorf("%w: [%d] %s %s", ErrSubscriptionRejected, msg.Error.Code, msg.Error.Message, msg.Error.Data)
		}

		var event newBlockEvent
		if len(msg.Result) == 0 || json.Unmarshal(msg.Result, &event) != nil {
			continue
		}

		// the subscription ack carries an empty result
		height := int64(event.Data.Value.Block.Header.Height)
		if height <= 0 {
			continue
		}

		logger.Debug(ctx, "new block", "block.height", height)
		chflow.SendLatest(heightsCh, height)
	}
}

type subscriberConfig struct {
	dialer     *websocket.Dialer
	retry      retry.Retry
	bufferSize int
}

type SubscriberOption func(*subscriberConfig)

// NewSubscriber creates a new block subscriber for the node at rpcEndpoint.
func NewSubscriber(rpcEndpoint string, opts ...SubscriberOption) (*subscriber, error) {
	endpoint, err := WebsocketURL(rpcEndpoint)
	if err != nil {
		return nil, err
	}

	cfg := subscriberConfig{
		dialer:     websocket.DefaultDialer,
		retry:      retry.New(retry.WithAttempts(5), retry.WithMaxDelay(30*time.Second)),
		bufferSize: defaultHeightsBufferSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &subscriber{
		endpoint:   endpoint,
		dialer:     cfg.dialer,
		retry:      cfg.retry,
		bufferSize: cfg.bufferSize,
	}, nil
}

func WithDialer(d *websocket.Dialer) SubscriberOption {
	return func(c *subscriberConfig) {
		c.dialer = d
	}
}

// WithReconnectRetry sets the policy used to re-establish a dropped
// subscription.
func WithReconnectRetry(r retry.Retry) SubscriberOption {
	return func(c *subscriberConfig) {
		c.retry = r
	}
}

func WithBufferSize(n int) SubscriberOption {
	return func(c *subscriberConfig) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}
