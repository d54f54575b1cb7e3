// Package pool implements a share-accounting engine for a pooled asset
// with linearly-vesting issuance. Participants deposit the underlying
// asset for proportional claim shares; custody surplus is unlocked into
// the pool's holdings at a constant rate over an administratively set
// vesting window, so the share/asset exchange rate grows smoothly instead
// of jumping when value arrives.
package pool

import (
	"sync"
	"time"

	"cosmossdk.io/math"

	"github.com/vestpool/libvestpool-go/config"
	"github.com/vestpool/libvestpool-go/custody"
	"github.com/vestpool/libvestpool-go/journal"
	"github.com/vestpool/libvestpool-go/ledger"
)

// Pool is one deployed pool instance. All exported operations run to
// completion under a single mutex: each call observes and produces a
// consistent state, in a global serial order.
type Pool struct {
	mu        sync.Mutex
	precision math.Int
	state     State

	owner        string
	pendingOwner string

	ledger  ledger.Ledger
	custody custody.Custody
	clock   func() time.Time
	journal journal.Recorder
}

// Option configures a Pool.
type Option func(*Pool)

// WithClock overrides the ambient time source. The clock must be
// monotonically non-decreasing.
func WithClock(clock func() time.Time) Option {
	return func(p *Pool) { p.clock = clock }
}

// WithRecorder attaches an operation journal. Recording failures never
// fail the recorded operation.
func WithRecorder(r journal.Recorder) Option {
	return func(p *Pool) { p.journal = r }
}

// New creates a pool from a configuration with zero holdings and no
// vesting schedule. cfg.Decimals fixes the fixed-point precision to
// 10^decimals for the life of the pool; cfg.Journal attaches an in-memory
// operation journal (overridable with WithRecorder). Persistence is
// assembled separately, see poolstore.OpenPool.
func New(cfg config.Config, lg ledger.Ledger, cst custody.Custody, opts ...Option) (*Pool, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if lg == nil || cst == nil {
		return nil, ErrNilCollaborator
	}

	p := &Pool{
		precision: math.NewIntWithDecimal(1, cfg.Decimals),
		owner:     cfg.Owner,
		ledger:    lg,
		custody:   cst,
		clock:     time.Now,
		journal:   journal.NewNoopRecorder(),
	}
	if cfg.Journal {
		p.journal = journal.NewMemRecorder()
	}
	for _, opt := range opts {
		opt(p)
	}
	p.state = zeroState(p.clock())
	return p, nil
}

// Journal returns the pool's operation recorder.
func (p *Pool) Journal() journal.Recorder { return p.journal }

// Precision returns the pool's fixed-point scale factor.
func (p *Pool) Precision() math.Int { return p.precision }

// Owner returns the current owner.
func (p *Pool) Owner() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.owner
}

// SetPendingOwner nominates a new owner. Only the current owner may call;
// ownership moves once the nominee accepts.
func (p *Pool) SetPendingOwner(caller, nominee string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if caller != p.owner {
		return ErrNotAuthorized
	}
	p.pendingOwner = nominee
	return nil
}

// AcceptOwnership completes the ownership handshake. Only the pending
// owner may call.
func (p *Pool) AcceptOwnership(caller string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if caller == "" || caller != p.pendingOwner {
		return ErrNotAuthorized
	}
	p.owner = caller
	p.pendingOwner = ""
	return nil
}

func (p *Pool) record(kind journal.Kind, account string, assets, shares math.Int, at time.Time) {
	// Journal failures are deliberately swallowed: the operation already
	// committed and must not be failed retroactively.
	_ = p.journal.Record(journal.New(kind, account, assets, shares, at))
}

func checkAmount(account string, amount math.Int) error {
	if account == "" {
		return ErrEmptyAccount
	}
	if amount.IsNil() || amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}
