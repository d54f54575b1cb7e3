package pool

import (
	"time"

	"cosmossdk.io/math"
)

var secondsPerYear = math.NewInt(365 * 24 * 60 * 60)

// TotalHoldings returns the pool's current total claimable value: the
// anchored free assets plus whatever the vesting line has unlocked since
// the last anchor, clamped at the window end.
func (p *Pool) TotalHoldings() math.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalHoldings(p.clock())
}

func (p *Pool) totalHoldings(now time.Time) math.Int {
	if p.state.IssuanceRate.IsZero() {
		return p.state.FreeAssets
	}

	end := now
	if end.After(p.state.VestingPeriodFinish) {
		end = p.state.VestingPeriodFinish
	}
	elapsed := int64(end.Sub(p.state.LastUpdated) / time.Second)
	if elapsed <= 0 {
		return p.state.FreeAssets
	}
	vested := p.state.IssuanceRate.Mul(math.NewInt(elapsed)).Quo(p.precision)
	return p.state.FreeAssets.Add(vested)
}

// ExchangeRate returns the current share price in asset units, scaled by
// precision. With no shares outstanding the bootstrap rate is exactly
// precision (1.0 in fixed point).
func (p *Pool) ExchangeRate() math.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exchangeRate(p.clock())
}

func (p *Pool) exchangeRate(now time.Time) math.Int {
	supply := p.ledger.TotalSupply()
	if supply.IsZero() {
		return p.precision
	}
	// Truncating division: rounding always favors the pool, never the
	// participant being priced.
	return p.totalHoldings(now).Mul(p.precision).Quo(supply)
}

// PreviewDeposit returns the shares a deposit of assetAmount would mint at
// the current rate.
func (p *Pool) PreviewDeposit(assetAmount math.Int) math.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.previewDeposit(p.clock(), assetAmount)
}

func (p *Pool) previewDeposit(now time.Time, assetAmount math.Int) math.Int {
	return assetAmount.Mul(p.precision).Quo(p.exchangeRate(now))
}

// PreviewRedeem returns the assets that burning shareAmount would return
// at the current rate.
func (p *Pool) PreviewRedeem(shareAmount math.Int) math.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.previewRedeem(p.clock(), shareAmount)
}

func (p *Pool) previewRedeem(now time.Time, shareAmount math.Int) math.Int {
	return shareAmount.Mul(p.exchangeRate(now)).Quo(p.precision)
}

// PreviewWithdraw returns the shares that must be burned to extract
// assetAmount.
func (p *Pool) PreviewWithdraw(assetAmount math.Int) math.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.previewWithdraw(p.clock(), assetAmount)
}

// TODO: withdraw prices shares the same way as deposit (dividing by the
// rate) rather than via the rate's reciprocal used by redeem. Carried over
// as-is; revisit once the rounding direction for withdrawals is settled.
func (p *Pool) previewWithdraw(now time.Time, assetAmount math.Int) math.Int {
	return assetAmount.Mul(p.precision).Quo(p.exchangeRate(now))
}

// BalanceOfAssets returns the asset value of an account's share balance at
// the current rate.
func (p *Pool) BalanceOfAssets(account string) math.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ledger.BalanceOf(account).Mul(p.exchangeRate(p.clock())).Quo(p.precision)
}

// APR returns an annualized issuance estimate, scaled by precision.
// Zero when no vesting schedule is active or no shares are outstanding.
func (p *Pool) APR() math.Int {
	p.mu.Lock()
	defer p.mu.Unlock()

	supply := p.ledger.TotalSupply()
	if supply.IsZero() || p.state.IssuanceRate.IsZero() {
		return math.ZeroInt()
	}
	assetScale := p.precision
	return p.state.IssuanceRate.Mul(secondsPerYear).Mul(assetScale).Quo(supply).Quo(p.precision)
}

// updateIssuanceParams re-anchors the vesting line at now, zeroing the
// rate once the window has expired. Idempotent; called after every
// mutation. st is the staged state being built by the caller.
func (p *Pool) updateIssuanceParams(st *State, now time.Time) {
	if now.After(st.VestingPeriodFinish) {
		st.IssuanceRate = math.ZeroInt()
	}
	st.LastUpdated = now
}
