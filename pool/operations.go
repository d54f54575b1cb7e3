package pool

import (
	"fmt"
	"time"

	"cosmossdk.io/math"

	"github.com/vestpool/libvestpool-go/journal"
)

// The three participant operations share one shape: price against the
// pre-mutation rate, mutate the share ledger, re-anchor free assets on a
// staged copy of the accrual state, then perform the external transfer.
// The staged copy commits only after the transfer succeeds; on failure the
// ledger mutation is compensated and the copy discarded, so a failed call
// leaves no trace.

// Deposit takes assetAmount from caller's custody wallet and mints the
// corresponding shares. The deposited assets are immediately liquid; they
// do not themselves vest.
func (p *Pool) Deposit(caller string, assetAmount math.Int) (math.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := checkAmount(caller, assetAmount); err != nil {
		return math.ZeroInt(), err
	}
	now := p.clock()

	shares := p.previewDeposit(now, assetAmount)
	if !shares.IsZero() {
		if err := p.ledger.Mint(caller, shares); err != nil {
			return math.ZeroInt(), err
		}
	}

	staged := p.state
	staged.FreeAssets = p.totalHoldings(now).Add(assetAmount)
	p.updateIssuanceParams(&staged, now)

	if err := p.custody.TransferIn(caller, assetAmount); err != nil {
		if !shares.IsZero() {
			_ = p.ledger.Burn(caller, shares)
		}
		return math.ZeroInt(), fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	p.state = staged
	p.record(journal.KindDeposit, caller, assetAmount, shares, now)
	return shares, nil
}

// Redeem burns shareAmount of caller's shares and pays out the
// corresponding assets.
func (p *Pool) Redeem(caller string, shareAmount math.Int) (math.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := checkAmount(caller, shareAmount); err != nil {
		return math.ZeroInt(), err
	}
	now := p.clock()

	assets := p.previewRedeem(now, shareAmount)
	return p.payOut(journal.KindRedeem, caller, assets, shareAmount, now)
}

// Withdraw burns the shares required to extract exactly assetAmount and
// pays it out.
func (p *Pool) Withdraw(caller string, assetAmount math.Int) (math.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := checkAmount(caller, assetAmount); err != nil {
		return math.ZeroInt(), err
	}
	now := p.clock()

	shares := p.previewWithdraw(now, assetAmount)
	if _, err := p.payOut(journal.KindWithdraw, caller, assetAmount, shares, now); err != nil {
		return math.ZeroInt(), err
	}
	return shares, nil
}

// payOut is the shared burn-and-transfer tail of redeem and withdraw.
// Returns the assets paid.
func (p *Pool) payOut(kind journal.Kind, caller string, assets, shares math.Int, now time.Time) (math.Int, error) {
	holdings := p.totalHoldings(now)
	if holdings.LT(assets) {
		return math.ZeroInt(), fmt.Errorf("%w: holdings %s, requested %s", ErrInsufficientHoldings, holdings, assets)
	}

	if !shares.IsZero() {
		if err := p.ledger.Burn(caller, shares); err != nil {
			return math.ZeroInt(), err
		}
	}

	staged := p.state
	staged.FreeAssets = holdings.Sub(assets)
	p.updateIssuanceParams(&staged, now)

	if !assets.IsZero() {
		if err := p.custody.TransferOut(caller, assets); err != nil {
			if !shares.IsZero() {
				_ = p.ledger.Mint(caller, shares)
			}
			return math.ZeroInt(), fmt.Errorf("%w: %w", ErrTransferFailed, err)
		}
	}

	p.state = staged
	p.record(kind, caller, assets, shares, now)
	return assets, nil
}
