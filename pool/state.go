package pool

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// State is the accrual state of a pool: the anchor of the current vesting
// line. It is the unit of persistence — Snapshot and Restore exchange it
// with a state store.
type State struct {
	// FreeAssets is the value already unlocked regardless of elapsed time,
	// the vesting line's y-intercept.
	FreeAssets math.Int `json:"free_assets"`

	// IssuanceRate is the slope of the vesting line in asset units per
	// second, scaled by the pool's precision. Zero while idle.
	IssuanceRate math.Int `json:"issuance_rate"`

	// LastUpdated is when the accrual state was last anchored.
	LastUpdated time.Time `json:"last_updated"`

	// VestingPeriodFinish is the end of the current vesting window.
	VestingPeriodFinish time.Time `json:"vesting_period_finish"`
}

func zeroState(at time.Time) State {
	return State{
		FreeAssets:          math.ZeroInt(),
		IssuanceRate:        math.ZeroInt(),
		LastUpdated:         at,
		VestingPeriodFinish: at,
	}
}

func (s State) validate() error {
	if s.FreeAssets.IsNil() || s.IssuanceRate.IsNil() {
		return fmt.Errorf("%w: unset amount", ErrInvalidState)
	}
	if s.FreeAssets.IsNegative() || s.IssuanceRate.IsNegative() {
		return fmt.Errorf("%w: negative amount", ErrInvalidState)
	}
	if s.IssuanceRate.IsPositive() && s.VestingPeriodFinish.Before(s.LastUpdated) {
		return fmt.Errorf("%w: vesting finish %s before last update %s",
			ErrInvalidState, s.VestingPeriodFinish.UTC(), s.LastUpdated.UTC())
	}
	return nil
}

// Snapshot returns a copy of the pool's accrual state.
func (p *Pool) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Restore replaces the pool's accrual state with a previously snapshotted
// one, validating it first.
func (p *Pool) Restore(s State) error {
	if err := s.validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = s
	return nil
}
