package poolstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/vestpool/libvestpool-go/pool"
)

var (
	bucketState = []byte("pool_state")
	keyCurrent  = []byte("current")
)

// BoltStore is a StateStore backed by a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ StateStore = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("poolstore: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("poolstore: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("poolstore: create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Save stores the snapshot, replacing any previous one.
func (s *BoltStore) Save(st pool.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("poolstore: encode state: %w", err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketState).Put(keyCurrent, data)
	})
	if err != nil {
		return fmt.Errorf("poolstore: save state: %w", err)
	}
	return nil
}

// Load returns the most recently saved snapshot.
func (s *BoltStore) Load() (pool.State, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketState).Get(keyCurrent); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return pool.State{}, fmt.Errorf("poolstore: load state: %w", err)
	}
	if data == nil {
		return pool.State{}, ErrNoState
	}

	var st pool.State
	if err := json.Unmarshal(data, &st); err != nil {
		return pool.State{}, fmt.Errorf("poolstore: decode state: %w", err)
	}
	return st, nil
}
