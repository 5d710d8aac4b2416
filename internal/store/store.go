package store

import (
	"context"
	"errors"

	"twitch_casino/internal/domain"
)

// ErrTxAborted wraps the persistence side of an Update failure: the
// in-memory mutation has been discarded and nothing was committed.
var ErrTxAborted = errors.New("ledger transaction aborted")

// Store is the keyed ledger: player identity -> Account document.
//
// Update is the transaction boundary every resolver runs inside: the
// callback gets the current account (created lazily with the store's
// starting balance), mutates it, and the result is committed atomically.
// Updates for the same player are serialized; distinct players never block
// each other. If the callback errors or the write fails, the mutation is
// discarded.
type Store interface {
	Get(ctx context.Context, playerID string) (*domain.Account, error)
	Put(ctx context.Context, acc *domain.Account) error
	Update(ctx context.Context, playerID string, fn func(*domain.Account) error) (*domain.Account, error)
	Close() error
}
