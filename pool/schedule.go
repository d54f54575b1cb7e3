package pool

import (
	"fmt"
	"time"

	"cosmossdk.io/math"

	"github.com/vestpool/libvestpool-go/journal"
)

// UpdateVestingSchedule starts a new vesting window. Owner only. The
// custody surplus above current holdings is spread linearly over period;
// value still vesting from a prior window is captured into free assets
// first, so restarting an unexpired window loses nothing. Returns the new
// issuance rate (asset units per second, scaled by precision).
func (p *Pool) UpdateVestingSchedule(caller string, period time.Duration) (math.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if caller != p.owner {
		return math.ZeroInt(), ErrNotAuthorized
	}
	seconds := int64(period / time.Second)
	if seconds <= 0 {
		return math.ZeroInt(), ErrZeroVestingPeriod
	}

	now := p.clock()
	holdings := p.totalHoldings(now)
	balance := p.custody.Balance()
	if balance.LT(holdings) {
		return math.ZeroInt(), fmt.Errorf("%w: custody %s, holdings %s", ErrCustodyDeficit, balance, holdings)
	}

	surplus := balance.Sub(holdings)
	rate := surplus.Mul(p.precision).Quo(math.NewInt(seconds))

	p.state = State{
		FreeAssets:          holdings,
		IssuanceRate:        rate,
		LastUpdated:         now,
		VestingPeriodFinish: now.Add(time.Duration(seconds) * time.Second),
	}
	p.record(journal.KindScheduleUpdate, caller, surplus, math.ZeroInt(), now)
	return rate, nil
}

// VestingPeriodFinish returns the end of the current vesting window.
func (p *Pool) VestingPeriodFinish() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.VestingPeriodFinish
}

// IssuanceRate returns the current issuance rate, scaled by precision.
// It reflects the stored rate; a window that has expired but not yet been
// touched by a mutation still reports its old rate here, while
// TotalHoldings already stops growing at the window end.
func (p *Pool) IssuanceRate() math.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.IssuanceRate
}

// FreeAssets returns the anchored free assets.
func (p *Pool) FreeAssets() math.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.FreeAssets
}
