package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"twitch_casino/internal/domain"
)

// MemoryStore keeps the ledger in a process-local map. Used by tests and
// dev mode; accounts round-trip through JSON so the semantics match the
// durable backends.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string][]byte
	keys     *keyLock
	starting int64
}

func NewMemoryStore(startingCredits int64) *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string][]byte),
		keys:     newKeyLock(),
		starting: startingCredits,
	}
}

func (s *MemoryStore) load(playerID string) (*domain.Account, error) {
	s.mu.RLock()
	raw, ok := s.accounts[playerID]
	s.mu.RUnlock()
	if !ok {
		return domain.NewAccount(playerID, s.starting), nil
	}
	var acc domain.Account
	if err := json.Unmarshal(raw, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *MemoryStore) Get(ctx context.Context, playerID string) (*domain.Account, error) {
	return s.load(playerID)
}

func (s *MemoryStore) Put(ctx context.Context, acc *domain.Account) error {
	raw, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.accounts[acc.PlayerID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, playerID string, fn func(*domain.Account) error) (*domain.Account, error) {
	l := s.keys.lock(playerID)
	defer l.Unlock()

	acc, err := s.load(playerID)
	if err != nil {
		return nil, err
	}
	if err := fn(acc); err != nil {
		return nil, err
	}
	acc.UpdatedAt = time.Now().UTC()
	if err := s.Put(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *MemoryStore) Close() error { return nil }
