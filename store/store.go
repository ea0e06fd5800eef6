// Package store persists the alarm collection. The whole collection is kept
// as one JSON document under a single key and every change rewrites it.
package store

import (
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"github.com/ayoisaiah/chime/internal/models"
)

// AlarmsKey is the storage key that holds the serialized alarm collection.
const AlarmsKey = "alarms"

const (
	OpLoad   = "load"
	OpAppend = "append"
	OpDelete = "delete"
)

// Observer is notified after every store operation.
type Observer func(op string, err error)

// Alarms is the alarm record store. Writes are serialized by the store so
// that a read-modify-write cycle is never interleaved with another one in
// the same process.
type Alarms struct {
	kv       KV
	observer Observer
	mu       sync.Mutex
}

// NewAlarms returns a record store on top of kv.
func NewAlarms(kv KV) *Alarms {
	return &Alarms{kv: kv}
}

// SetObserver registers fn to be called after each operation.
func (s *Alarms) SetObserver(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observer = fn
}

func (s *Alarms) observe(op string, err error) {
	if err != nil {
		slog.Error("alarm store operation failed", "op", op, "error", err)
	}

	if s.observer != nil {
		s.observer(op, err)
	}
}

// load reads and decodes the collection. Absence of data is not an error.
func (s *Alarms) load() ([]models.Alarm, error) {
	b, err := s.kv.Get(AlarmsKey)
	if err != nil {
		return nil, ErrStorageUnavailable.Wrap(err)
	}

	alarms := []models.Alarm{}

	if len(b) == 0 {
		return alarms, nil
	}

	err = json.Unmarshal(b, &alarms)
	if err != nil {
		return nil, ErrStorageUnavailable.Wrap(err)
	}

	// a stored null decodes to a nil slice
	if alarms == nil {
		alarms = []models.Alarm{}
	}

	return alarms, nil
}

func (s *Alarms) commit(alarms []models.Alarm) error {
	b, err := json.Marshal(alarms)
	if err != nil {
		return ErrStorageUnavailable.Wrap(err)
	}

	err = s.kv.Set(AlarmsKey, b)
	if err != nil {
		return ErrStorageUnavailable.Wrap(err)
	}

	return nil
}

// LoadAll returns every stored alarm in insertion order.
func (s *Alarms) LoadAll() ([]models.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarms, err := s.load()
	s.observe(OpLoad, err)

	return alarms, err
}

// Append adds a to the collection.
func (s *Alarms) Append(a models.Alarm) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() {
		s.observe(OpAppend, err)
	}()

	alarms, err := s.load()
	if err != nil {
		return err
	}

	if slices.ContainsFunc(alarms, func(v models.Alarm) bool {
		return v.ID == a.ID
	}) {
		return ErrDuplicateID.Fmt(a.ID)
	}

	return s.commit(append(alarms, a))
}

// DeleteByID removes the alarm with the given id. Deleting an id that is not
// stored is not an error and leaves the collection untouched.
func (s *Alarms) DeleteByID(id string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() {
		s.observe(OpDelete, err)
	}()

	alarms, err := s.load()
	if err != nil {
		return err
	}

	updated := slices.DeleteFunc(slices.Clone(alarms), func(v models.Alarm) bool {
		return v.ID == id
	})

	if len(updated) == len(alarms) {
		return nil
	}

	return s.commit(updated)
}

// FindByID returns the alarm with the given id, or nil if there is none.
func (s *Alarms) FindByID(id string) (*models.Alarm, error) {
	alarms, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	for i := range alarms {
		if alarms[i].ID == id {
			return &alarms[i], nil
		}
	}

	return nil, nil
}

// Close closes the underlying storage.
func (s *Alarms) Close() error {
	return s.kv.Close()
}
