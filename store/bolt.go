package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketName = "chime"

// BoltKV is a bbolt backed KV. bbolt holds an exclusive file lock, so only
// one process can write alarms at a time.
type BoltKV struct {
	*bolt.DB
}

// Get returns a copy of the value stored under key.
func (c *BoltKV) Get(key string) ([]byte, error) {
	var b []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return nil
		}

		// values are only valid for the life of the transaction
		b = make([]byte, len(v))
		copy(b, v)

		return nil
	})

	return b, err
}

// Set stores blob under key.
func (c *BoltKV) Set(key string, blob []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), blob)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrDatabaseLocked
		}

		return nil, err
	}

	return db, nil
}

// NewBoltKV opens the bbolt file at dbPath and creates the bucket used for
// storage if it does not exist already.
func NewBoltKV(dbPath string) (*BoltKV, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltKV{
		db,
	}, nil
}
