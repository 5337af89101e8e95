// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
)

type sqliteStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteStore opens the sqlite database at dsn and applies migrations.
func NewSQLiteStore(ctx context.Context, dsn string, logger *logger.Logger) (KeyValueStore, error) {
	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newSQLiteStore(db, logger), nil
}

func newSQLiteStore(db *DB, logger *logger.Logger) *sqliteStore {
	return &sqliteStore{db: db, logger: logger}
}

func (s *sqliteStore) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	if len(keys) == 0 {
		return map[string][]byte{}, nil
	}

	query, args, err := buildGetQuery(keys)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryEntries(ctx, s.db, s.logger, "sqliteStore.Get", query, args)
}

func (s *sqliteStore) List(ctx context.Context, prefix string) (map[string][]byte, error) {
	query, args, err := buildListQuery(prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryEntries(ctx, s.db, s.logger, "sqliteStore.List", query, args)
}

// querier is satisfied by both the database handle and a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryEntries(ctx context.Context, q querier, log *logger.Logger, fn, query string, args []any) (map[string][]byte, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var (
			name  string
			value []byte
		)
		if err = rows.Scan(&name, &value); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out[name] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func (s *sqliteStore) Set(ctx context.Context, entries map[string][]byte) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStore.Set").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for k, v := range entries {
		if err = execEntry(ctx, tx, k, v); err != nil {
			s.logger.Err(err).Str("func", "sqliteStore.Set").Str("key", k).Msg("failed to write key")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "sqliteStore.Set").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Update reads and writes inside one transaction. Transactions are opened
// with BEGIN IMMEDIATE (see sqliteOptions), so the write lock is held from
// the read on and a writer in another process waits for the busy timeout.
func (s *sqliteStore) Update(ctx context.Context, keys []string, fn UpdateFunc) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStore.Update").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	current := map[string][]byte{}
	if len(keys) > 0 {
		query, args, buildErr := buildGetQuery(keys)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if current, err = queryEntries(ctx, tx, s.logger, "sqliteStore.Update", query, args); err != nil {
			return err
		}
	}

	entries, err := fn(current)
	if err != nil {
		return err
	}

	for k, v := range entries {
		if err = execEntry(ctx, tx, k, v); err != nil {
			s.logger.Err(err).Str("func", "sqliteStore.Update").Str("key", k).Msg("failed to write key")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "sqliteStore.Update").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func execEntry(ctx context.Context, tx *sql.Tx, key string, value []byte) error {
	var (
		query string
		args  []any
		err   error
	)
	if value == nil {
		query, args, err = buildDeleteQuery(key)
	} else {
		query, args, err = buildUpsertQuery(key, value)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteStore) Clear(ctx context.Context) error {
	query, args, err := buildClearQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteStore.Clear").Msg("failed to clear store")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
