// Package tokenstore keeps the dusun registration tokens in a badger
// key-value namespace, decoupled from the relational rows. Keys have
// the shape token:<jabatan>:<dusun-id>. Entries never expire and are
// deliberately not removed when a dusun is deleted.
package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/andika-123140096/website-desa/internal/domain"
)

type Store interface {
	Put(ctx context.Context, jabatan domain.Jabatan, dusunID int64, token string) error
	// Get returns ok=false when no token was ever issued for the pair.
	Get(ctx context.Context, jabatan domain.Jabatan, dusunID int64) (token string, ok bool, err error)
	Close() error
}

type badgerStore struct {
	db *badger.DB
}

// Open opens the persistent token store at dir.
func Open(dir string) (Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return &badgerStore{db: db}, nil
}

// OpenInMemory opens a throwaway in-memory store, for tests.
func OpenInMemory() (Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &badgerStore{db: db}, nil
}

func key(jabatan domain.Jabatan, dusunID int64) []byte {
	return []byte(fmt.Sprintf("token:%s:%d", jabatan, dusunID))
}

func (s *badgerStore) Put(ctx context.Context, jabatan domain.Jabatan, dusunID int64, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(jabatan, dusunID), []byte(token))
	})
}

func (s *badgerStore) Get(ctx context.Context, jabatan domain.Jabatan, dusunID int64) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var token string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(jabatan, dusunID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			token = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return token, true, nil
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
