package store_test

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/store"
)

type backend struct {
	Name string
	Open func(t *testing.T) store.KV
}

var backends = []backend{
	{
		Name: "bolt",
		Open: func(t *testing.T) store.KV {
			t.Helper()

			kv, err := store.Open(
				store.BackendBolt,
				filepath.Join(t.TempDir(), "chime.db"),
			)
			require.NoError(t, err)

			return kv
		},
	},
	{
		Name: "badger",
		Open: func(t *testing.T) store.KV {
			t.Helper()

			kv, err := store.NewBadgerKV("")
			require.NoError(t, err)

			return kv
		},
	},
}

// failingKV fails every read or write on demand.
type failingKV struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	setCall int
}

func newFailingKV() *failingKV {
	return &failingKV{data: make(map[string][]byte)}
}

func (f *failingKV) Get(key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	return f.data[key], nil
}

func (f *failingKV) Set(key string, blob []byte) error {
	f.setCall++

	if f.setErr != nil {
		return f.setErr
	}

	f.data[key] = blob

	return nil
}

func (f *failingKV) Close() error {
	return nil
}

func dinner() models.Alarm {
	return models.Alarm{
		ID:              "0192f0c4-0000-7000-8000-000000000001",
		Name:            "Dinner",
		Kind:            "dinner",
		IntervalMinutes: 5,
		Sound:           models.DefaultSound,
		RepeatDays:      []models.Weekday{},
	}
}

func workout() models.Alarm {
	return models.Alarm{
		ID:              "0192f0c4-0000-7000-8000-000000000002",
		Name:            "Workout",
		Kind:            "workout",
		IntervalMinutes: 10,
		Sound:           "Bell",
		RepeatDays:      []models.Weekday{models.Monday, models.Wednesday},
	}
}

func TestLoadAllEmpty(t *testing.T) {
	for _, b := range backends {
		t.Run(b.Name, func(t *testing.T) {
			s := store.NewAlarms(b.Open(t))
			defer s.Close()

			alarms, err := s.LoadAll()
			require.NoError(t, err)
			assert.NotNil(t, alarms)
			assert.Empty(t, alarms)
		})
	}
}

func TestLoadAllNullBlob(t *testing.T) {
	kv := newFailingKV()
	kv.data[store.AlarmsKey] = []byte("null")

	alarms, err := store.NewAlarms(kv).LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, alarms)
	assert.Empty(t, alarms)
}

func TestBoltSecondOpenIsLocked(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "chime.db")

	kv, err := store.Open(store.BackendBolt, dbPath)
	require.NoError(t, err)

	defer kv.Close()

	_, err = store.Open(store.BackendBolt, dbPath)
	assert.ErrorIs(t, err, store.ErrDatabaseLocked)
}

func TestAppendAndDelete(t *testing.T) {
	for _, b := range backends {
		t.Run(b.Name, func(t *testing.T) {
			s := store.NewAlarms(b.Open(t))
			defer s.Close()

			require.NoError(t, s.Append(dinner()))
			require.NoError(t, s.Append(workout()))

			got, err := s.LoadAll()
			require.NoError(t, err)

			want := []models.Alarm{dinner(), workout()}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("LoadAll() mismatch (-want +got):\n%s", diff)
			}

			require.NoError(t, s.DeleteByID(dinner().ID))

			got, err = s.LoadAll()
			require.NoError(t, err)

			want = []models.Alarm{workout()}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("LoadAll() after delete mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAppendDuplicateID(t *testing.T) {
	for _, b := range backends {
		t.Run(b.Name, func(t *testing.T) {
			s := store.NewAlarms(b.Open(t))
			defer s.Close()

			require.NoError(t, s.Append(dinner()))

			dup := workout()
			dup.ID = dinner().ID

			err := s.Append(dup)
			assert.ErrorIs(t, err, store.ErrDuplicateID)

			got, err := s.LoadAll()
			require.NoError(t, err)
			assert.Len(t, got, 1)
			assert.Equal(t, "Dinner", got[0].Name)
		})
	}
}

func TestDeleteAbsentIDIsNoop(t *testing.T) {
	kv := newFailingKV()
	s := store.NewAlarms(kv)

	require.NoError(t, s.Append(dinner()))
	assert.Equal(t, 1, kv.setCall)

	require.NoError(t, s.DeleteByID("missing"))
	assert.Equal(t, 1, kv.setCall, "deleting an absent id must not write")

	got, err := s.LoadAll()
	require.NoError(t, err)

	if diff := cmp.Diff([]models.Alarm{dinner()}, got); diff != "" {
		t.Fatalf("collection changed (-want +got):\n%s", diff)
	}
}

func TestFindByID(t *testing.T) {
	s := store.NewAlarms(newFailingKV())

	require.NoError(t, s.Append(dinner()))
	require.NoError(t, s.Append(workout()))

	a, err := s.FindByID(workout().ID)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "Workout", a.Name)

	a, err = s.FindByID("missing")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestStorageUnavailable(t *testing.T) {
	errDisk := errors.New("disk on fire")

	testCases := []struct {
		Name string
		Prep func(kv *failingKV)
		Run  func(s *store.Alarms) error
	}{
		{
			Name: "read failure on load",
			Prep: func(kv *failingKV) { kv.getErr = errDisk },
			Run: func(s *store.Alarms) error {
				_, err := s.LoadAll()
				return err
			},
		},
		{
			Name: "corrupt blob on load",
			Prep: func(kv *failingKV) { kv.data[store.AlarmsKey] = []byte("{not json") },
			Run: func(s *store.Alarms) error {
				_, err := s.LoadAll()
				return err
			},
		},
		{
			Name: "write failure on append",
			Prep: func(kv *failingKV) { kv.setErr = errDisk },
			Run: func(s *store.Alarms) error {
				return s.Append(workout())
			},
		},
		{
			Name: "read failure on find",
			Prep: func(kv *failingKV) { kv.getErr = errDisk },
			Run: func(s *store.Alarms) error {
				_, err := s.FindByID(dinner().ID)
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			kv := newFailingKV()
			s := store.NewAlarms(kv)

			require.NoError(t, s.Append(dinner()))

			before := string(kv.data[store.AlarmsKey])

			tc.Prep(kv)

			err := tc.Run(s)
			assert.ErrorIs(t, err, store.ErrStorageUnavailable)

			if tc.Name != "corrupt blob on load" {
				assert.Equal(t, before, string(kv.data[store.AlarmsKey]))
			}
		})
	}
}

func TestObserver(t *testing.T) {
	kv := newFailingKV()
	s := store.NewAlarms(kv)

	var ops []string

	s.SetObserver(func(op string, err error) {
		result := "ok"
		if err != nil {
			result = "error"
		}

		ops = append(ops, op+":"+result)
	})

	require.NoError(t, s.Append(dinner()))
	_, err := s.LoadAll()
	require.NoError(t, err)
	require.NoError(t, s.DeleteByID(dinner().ID))

	kv.getErr = errors.New("boom")
	_, _ = s.LoadAll()

	assert.Equal(t, []string{
		"append:ok",
		"load:ok",
		"delete:ok",
		"load:error",
	}, ops)
}

func TestConcurrentAppends(t *testing.T) {
	s := store.NewAlarms(newFailingKV())

	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			a := dinner()
			a.ID = string(rune('a' + i))

			assert.NoError(t, s.Append(a))
		}()
	}

	wg.Wait()

	got, err := s.LoadAll()
	require.NoError(t, err)
	assert.Len(t, got, 20)
}
