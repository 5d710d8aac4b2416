package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"twitch_casino/internal/domain"
)

// PostgresStore keeps one account document per row and serializes
// per-account mutations with SELECT ... FOR UPDATE inside a transaction.
type PostgresStore struct {
	pool     *pgxpool.Pool
	starting int64
}

func NewPostgresStore(ctx context.Context, databaseURL string, startingCredits int64) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	s := &PostgresStore{pool: pool, starting: startingCredits}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS accounts (
			player_id  TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, playerID string) (*domain.Account, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM accounts WHERE player_id = $1`, playerID,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewAccount(playerID, s.starting), nil
	}
	if err != nil {
		return nil, err
	}
	var acc domain.Account
	if err := json.Unmarshal(raw, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *PostgresStore) Put(ctx context.Context, acc *domain.Account) error {
	raw, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO accounts (player_id, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (player_id) DO UPDATE SET doc = $2, updated_at = now()`,
		acc.PlayerID, raw)
	return err
}

func (s *PostgresStore) Update(ctx context.Context, playerID string, fn func(*domain.Account) error) (*domain.Account, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var raw []byte
	var acc *domain.Account
	err = tx.QueryRow(ctx,
		`SELECT doc FROM accounts WHERE player_id = $1 FOR UPDATE`, playerID,
	).Scan(&raw)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		acc = domain.NewAccount(playerID, s.starting)
	case err != nil:
		return nil, err
	default:
		acc = &domain.Account{}
		if err := json.Unmarshal(raw, acc); err != nil {
			return nil, err
		}
	}

	if err := fn(acc); err != nil {
		return nil, err
	}
	acc.UpdatedAt = time.Now().UTC()

	out, err := json.Marshal(acc)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO accounts (player_id, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (player_id) DO UPDATE SET doc = $2, updated_at = now()`,
		playerID, out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTxAborted, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTxAborted, err)
	}
	return acc, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
