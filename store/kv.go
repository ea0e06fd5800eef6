package store

const (
	// BackendBolt stores data in a single bbolt file.
	BackendBolt = "bolt"
	// BackendBadger stores data in a badger directory.
	BackendBadger = "badger"
)

// KV is the key-value persistence used by the record store.
type KV interface {
	// Get returns the blob stored under key, or nil if nothing is stored.
	Get(key string) ([]byte, error)
	// Set replaces the blob stored under key in a single write.
	Set(key string, blob []byte) error
	// Close releases the underlying database.
	Close() error
}

// Open opens the key-value store for the named backend at path.
func Open(backend, path string) (KV, error) {
	var (
		kv  KV
		err error
	)

	switch backend {
	case BackendBolt, "":
		kv, err = NewBoltKV(path)
	case BackendBadger:
		kv, err = NewBadgerKV(path)
	default:
		return nil, errUnknownBackend.Fmt(backend)
	}

	if err != nil {
		return nil, err
	}

	return kv, nil
}
