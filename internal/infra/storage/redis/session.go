package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/photonscan/internal/wallet"

	"github.com/redis/go-redis/v9"
)

// walletSessionKey holds the persisted wallet session.
const walletSessionKey = "wallet:session"

// SaveSession implements wallet.SessionStorage. The session does not expire.
func (c *client) SaveSession(ctx context.Context, session wallet.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.conn.Set(ctx, walletSessionKey, data, 0).Err()
}

// LoadSession returns the persisted session or wallet.ErrNoSession.
func (c *client) LoadSession(ctx context.Context) (wallet.Session, error) {
	data, err := c.conn.Get(ctx, walletSessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = wallet.ErrNoSession
		}
		return wallet.Session{}, err
	}

	var session wallet.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return wallet.Session{}, fmt.Errorf("decode wallet session: %w", err)
	}
	return session, nil
}

func (c *client) ClearSession(ctx context.Context) error {
	return c.conn.Del(ctx, walletSessionKey).Err()
}

var _ wallet.SessionStorage = new(client)
