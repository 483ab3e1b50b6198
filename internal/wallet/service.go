// Package wallet owns the wallet session: which address is connected to
// which chain, persisted so that a restart can restore it.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/pkg/logger"
)

var (
	ErrNoSession         = errors.New("no wallet session")
	ErrConnectInProgress = errors.New("wallet connection in progress")
)

// Session is the persisted form of a connected wallet.
type Session struct {
	Address     string    `json:"address"`
	ChainID     string    `json:"chain_id"`
	ConnectedAt time.Time `json:"connected_at"`
}

// SessionStorage persists the wallet session. LoadSession returns
// ErrNoSession when nothing is stored.
type SessionStorage interface {
	SaveSession(ctx context.Context, session Session) error
	LoadSession(ctx context.Context) (Session, error)
	ClearSession(ctx context.Context) error
}

type Service interface {
	State() State
	Connect(ctx context.Context, address string) (State, error)
	Disconnect(ctx context.Context) error
	Restore(ctx context.Context) (State, error)
}

type service struct {
	store   *Store
	storage SessionStorage
	chainID string
	prefix  string
	now     func() time.Time
}

var _ Service = (*service)(nil)

func (s *service) State() State {
	return s.store.State()
}

// Connect validates address, persists the session and marks the wallet
// connected. On failure the previous state is restored.
func (s *service) Connect(ctx context.Context, address string) (State, error) {
	address = strings.TrimSpace(address)
	if err := chain.ValidateAddress(address, s.prefix); err != nil {
		return s.store.State(), err
	}

	var (
		previous State
		err      error
	)
	state, started := s.store.UpdateIf(func(current State) (State, bool) {
		previous = current
		switch {
		case current.Status == StatusConnecting:
			err = ErrConnectInProgress
			return current, false
		case current.Status == StatusConnected && current.Address == address:
			return current, false
		}
		return State{Status: StatusConnecting, Address: address, ChainID: s.chainID}, true
	})
	if !started {
		return state, err
	}

	session := Session{Address: address, ChainID: s.chainID, ConnectedAt: s.now().UTC()}
	if err := s.storage.SaveSession(ctx, session); err != nil {
		s.store.Update(func(State) State { return previous })
		return previous, fmt.Errorf("failed to persist wallet session: %w", err)
	}

	state = s.store.Update(func(State) State {
		return State{Status: StatusConnected, Address: address, ChainID: s.chainID}
	})

	logger.Info(ctx, "wallet connected", "wallet.address", address, "chain.id", s.chainID)
	return state, nil
}

// Disconnect clears the persisted session and the state.
func (s *service) Disconnect(ctx context.Context) error {
	if err := s.storage.ClearSession(ctx); err != nil {
		return fmt.Errorf("failed to clear wallet session: %w", err)
	}

	s.store.Update(func(State) State {
		return State{Status: StatusDisconnected}
	})

	logger.Info(ctx, "wallet disconnected")
	return nil
}

// Restore reconnects the persisted session, if any. Sessions for another
// chain or with an invalid address are discarded.
func (s *service) Restore(ctx context.Context) (State, error) {
	session, err := s.storage.LoadSession(ctx)
	if errors.Is(err, ErrNoSession) {
		return s.store.State(), nil
	}
	if err != nil {
		return s.store.State(), fmt.Errorf("failed to load wallet session: %w", err)
	}

	if session.ChainID != s.chainID || chain.ValidateAddress(session.Address, s.prefix) != nil {
		logger.Warn(ctx, "discarding stale wallet session", "wallet.address", session.Address, "chain.id", session.ChainID)
		return s.store.State(), s.storage.ClearSession(ctx)
	}

	return s.Connect(ctx, session.Address)
}

type nopSessionStorage struct{}

func (nopSessionStorage) SaveSession(context.Context, Session) error { return nil }

func (nopSessionStorage) LoadSession(context.Context) (Session, error) {
	return Session{}, ErrNoSession
}

func (nopSessionStorage) ClearSession(context.Context) error { return nil }

type config struct {
	storage SessionStorage
	chainID string
	prefix  string
}

type Option func(*config)

func New(store *Store, opts ...Option) *service {
	cfg := config{
		storage: nopSessionStorage{},
		chainID: chain.ChainID,
		prefix:  chain.AccountPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		store:   store,
		storage: cfg.storage,
		chainID: cfg.chainID,
		prefix:  cfg.prefix,
		now:     time.Now,
	}
}

func WithSessionStorage(storage SessionStorage) Option {
	return func(c *config) {
		c.storage = storage
	}
}

func WithChainID(chainID string) Option {
	return func(c *config) {
		c.chainID = chainID
	}
}

func WithAddressPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}
