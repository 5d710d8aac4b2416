package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"twitch_casino/internal/domain"
)

const badgerKeyPrefix = "account/"

// BadgerStore is the default durable ledger backend: one JSON document per
// account in an embedded Badger database. Per-account serialization comes
// from the key lock; the Badger transaction makes each commit atomic.
type BadgerStore struct {
	db       *badger.DB
	keys     *keyLock
	starting int64
}

func NewBadgerStore(path string, startingCredits int64) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return &BadgerStore{db: db, keys: newKeyLock(), starting: startingCredits}, nil
}

func badgerKey(playerID string) []byte {
	return []byte(badgerKeyPrefix + playerID)
}

func (s *BadgerStore) Get(ctx context.Context, playerID string) (*domain.Account, error) {
	var acc *domain.Account
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(playerID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			acc = domain.NewAccount(playerID, s.starting)
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			acc = &domain.Account{}
			return json.Unmarshal(val, acc)
		})
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *BadgerStore) Put(ctx context.Context, acc *domain.Account) error {
	raw, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(acc.PlayerID), raw)
	})
}

func (s *BadgerStore) Update(ctx context.Context, playerID string, fn func(*domain.Account) error) (*domain.Account, error) {
	l := s.keys.lock(playerID)
	defer l.Unlock()

	acc, err := s.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if err := fn(acc); err != nil {
		return nil, err
	}
	acc.UpdatedAt = time.Now().UTC()
	if err := s.Put(ctx, acc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTxAborted, err)
	}
	return acc, nil
}

func (s *BadgerStore) Close() error { return s.db.Close() }
