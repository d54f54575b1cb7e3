package poolstore

import (
	"errors"
	"path/filepath"

	"github.com/vestpool/libvestpool-go/config"
	"github.com/vestpool/libvestpool-go/custody"
	"github.com/vestpool/libvestpool-go/ledger"
	"github.com/vestpool/libvestpool-go/pool"
)

const dbFileName = "pool.db"

// OpenPool assembles a pool from its configuration. With cfg.Persist set
// it opens the snapshot database under cfg.DataDir, restores the saved
// accrual state if one exists, and returns the store so the caller can
// save further snapshots and close it; otherwise the returned store is
// nil and the pool starts fresh.
func OpenPool(cfg config.Config, lg ledger.Ledger, cst custody.Custody, opts ...pool.Option) (*pool.Pool, *BoltStore, error) {
	p, err := pool.New(cfg, lg, cst, opts...)
	if err != nil {
		return nil, nil, err
	}
	if !cfg.Persist {
		return p, nil, nil
	}

	store, err := OpenBoltStore(filepath.Join(cfg.DataDir, dbFileName))
	if err != nil {
		return nil, nil, err
	}

	state, err := store.Load()
	switch {
	case errors.Is(err, ErrNoState):
		// Fresh database, nothing to restore.
	case err != nil:
		_ = store.Close()
		return nil, nil, err
	default:
		if err := p.Restore(state); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
	}

	return p, store, nil
}
