package store

import (
	"errors"
	"os"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/ayoisaiah/chime/internal/osutil"
)

// BadgerKV is a badger backed KV.
type BadgerKV struct {
	db *badger.DB
}

// NewBadgerKV opens or creates a badger database in dir. An empty dir opens
// an in-memory database.
func NewBadgerKV(dir string) (*BadgerKV, error) {
	var opts badger.Options

	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
			return nil, err
		}

		opts = badger.DefaultOptions(dir)
	}

	// badger logs every compaction at INFO
	opts = opts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerKV{db: db}, nil
}

// Get returns the value stored under key.
func (b *BadgerKV) Get(key string) ([]byte, error) {
	var result []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}

			return err
		}

		result, err = item.ValueCopy(nil)

		return err
	})

	return result, err
}

// Set stores blob under key.
func (b *BadgerKV) Set(key string, blob []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), blob)
	})
}

// Close closes the database.
func (b *BadgerKV) Close() error {
	return b.db.Close()
}
