// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package chaintest provides an in-memory Charity contract for tests. It keeps
// the remote semantics the CLI relies on: sequential campaign ids, donor order,
// admin-only cancel, release and admin management, and the emitted events.
package chaintest

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"charity/cli/internal/chain"
)

// Revert reasons returned by the ledger.
var (
	ErrNotAdmin         = errors.New("execution reverted: Only admin can perform this action")
	ErrUnknownCampaign  = errors.New("execution reverted: Campaign does not exist")
	ErrCampaignComplete = errors.New("execution reverted: Campaign is already completed")
	ErrZeroDonation     = errors.New("execution reverted: Donation must be greater than 0")
	ErrInvalidGoal      = errors.New("execution reverted: Goal must be greater than 0")
	ErrInsufficientFund = errors.New("insufficient funds for gas * price + value")
)

type campaign struct {
	chain.Campaign
	donors  []common.Address
	amounts map[common.Address]*big.Int
}

// Ledger is the shared contract state. Accounts obtained from Bind act on it
// as different senders.
type Ledger struct {
	mu        sync.Mutex
	campaigns []*campaign
	admins    map[common.Address]bool
	balances  map[common.Address]*big.Int
	nonce     uint64
	calls     int
	now       func() time.Time

	// ReadErr and WriteErr, when set, fail every read or write call.
	ReadErr  error
	WriteErr error

	createdFeed  event.Feed
	releasedFeed event.Feed
	canceledFeed event.Feed
}

// NewLedger deploys an empty contract whose deployer is the first admin.
func NewLedger(deployer common.Address) *Ledger {
	return &Ledger{
		admins:   map[common.Address]bool{deployer: true},
		balances: make(map[common.Address]*big.Int),
		now:      time.Now,
	}
}

// SetClock replaces the block timestamp source.
func (l *Ledger) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Fund credits wei to account.
func (l *Ledger) Fund(account common.Address, wei *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(account, wei)
}

// Balance returns the native balance of account.
func (l *Ledger) Balance(account common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balanceOf(account)
}

// Calls returns how many contract calls have been made through any account.
func (l *Ledger) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

// Campaign returns a copy of the stored campaign.
func (l *Ledger) Campaign(id uint64) (chain.Campaign, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id >= uint64(len(l.campaigns)) {
		return chain.Campaign{}, false
	}
	return copyCampaign(l.campaigns[id].Campaign), true
}

// IsAdmin reports the admin flag without counting as a call.
func (l *Ledger) IsAdmin(account common.Address) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.admins[account]
}

// Bind returns a handle that sends transactions from the given account.
func (l *Ledger) Bind(from common.Address) *Account {
	return &Account{ledger: l, from: from, signer: true}
}

// ReadOnly returns a handle without a signer; writes fail with chain.ErrNoSigner.
func (l *Ledger) ReadOnly() *Account {
	return &Account{ledger: l}
}

// BindAs binds from, or a read-only handle when from is nil. It has the shape
// of a gateway binder function.
func (l *Ledger) BindAs(_ context.Context, from *common.Address) (chain.Charity, error) {
	if from == nil {
		return l.ReadOnly(), nil
	}
	return l.Bind(*from), nil
}

func (l *Ledger) balanceOf(account common.Address) *big.Int {
	if b, ok := l.balances[account]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

func (l *Ledger) credit(account common.Address, wei *big.Int) {
	l.balances[account] = new(big.Int).Add(l.balanceOf(account), wei)
}

func (l *Ledger) lookup(id *big.Int) (*campaign, error) {
	if id == nil || !id.IsUint64() || id.Uint64() >= uint64(len(l.campaigns)) {
		return nil, ErrUnknownCampaign
	}
	return l.campaigns[id.Uint64()], nil
}

// mined builds the receipt-bearing transaction for a successful write.
func (l *Ledger) mined(value *big.Int) *types.Transaction {
	l.nonce++
	return types.NewTx(&types.LegacyTx{Nonce: l.nonce, Value: value, Gas: 21000, GasPrice: big.NewInt(1)})
}

func copyCampaign(c chain.Campaign) chain.Campaign {
	c.Goal = new(big.Int).Set(c.Goal)
	c.TotalDonated = new(big.Int).Set(c.TotalDonated)
	c.CreationTime = new(big.Int).Set(c.CreationTime)
	return c
}

// Account is one sender's view of a Ledger. It implements chain.Charity.
type Account struct {
	ledger *Ledger
	from   common.Address
	signer bool
}

var _ chain.Charity = (*Account)(nil)

// From returns the sending account.
func (a *Account) From() common.Address { return a.from }

func (a *Account) read() (*Ledger, error) {
	l := a.ledger
	l.mu.Lock()
	l.calls++
	if l.ReadErr != nil {
		err := l.ReadErr
		l.mu.Unlock()
		return nil, err
	}
	return l, nil
}

func (a *Account) write() (*Ledger, error) {
	l := a.ledger
	l.mu.Lock()
	l.calls++
	if !a.signer {
		l.mu.Unlock()
		return nil, chain.ErrNoSigner
	}
	if l.WriteErr != nil {
		err := l.WriteErr
		l.mu.Unlock()
		return nil, err
	}
	return l, nil
}

func (a *Account) GetCampaignCount(ctx context.Context) (*big.Int, error) {
	l, err := a.read()
	if err != nil {
		return nil, err
	}
	defer l.mu.Unlock()
	return big.NewInt(int64(len(l.campaigns))), nil
}

func (a *Account) GetCampaign(ctx context.Context, id *big.Int) (chain.Campaign, error) {
	l, err := a.read()
	if err != nil {
		return chain.Campaign{}, err
	}
	defer l.mu.Unlock()
	c, err := l.lookup(id)
	if err != nil {
		return chain.Campaign{}, err
	}
	return copyCampaign(c.Campaign), nil
}

func (a *Account) GetDonors(ctx context.Context, id *big.Int) ([]common.Address, error) {
	l, err := a.read()
	if err != nil {
		return nil, err
	}
	defer l.mu.Unlock()
	c, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	return append([]common.Address(nil), c.donors...), nil
}

func (a *Account) GetDonationAmountByDonor(ctx context.Context, id *big.Int, donor common.Address) (*big.Int, error) {
	l, err := a.read()
	if err != nil {
		return nil, err
	}
	defer l.mu.Unlock()
	c, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	if amt, ok := c.amounts[donor]; ok {
		return new(big.Int).Set(amt), nil
	}
	return new(big.Int), nil
}

func (a *Account) IsAdminStatus(ctx context.Context, account common.Address) (bool, error) {
	l, err := a.read()
	if err != nil {
		return false, err
	}
	defer l.mu.Unlock()
	return l.admins[account], nil
}

func (a *Account) CreateCampaign(ctx context.Context, title, description string, recipient common.Address, goal *big.Int) (*types.Transaction, error) {
	l, err := a.write()
	if err != nil {
		return nil, err
	}
	if goal == nil || goal.Sign() <= 0 {
		l.mu.Unlock()
		return nil, ErrInvalidGoal
	}
	id := big.NewInt(int64(len(l.campaigns)))
	l.campaigns = append(l.campaigns, &campaign{
		Campaign: chain.Campaign{
			Title:        title,
			Description:  description,
			Recipient:    recipient,
			Goal:         new(big.Int).Set(goal),
			TotalDonated: new(big.Int),
			CreationTime: big.NewInt(l.now().Unix()),
			Creator:      a.from,
		},
		amounts: make(map[common.Address]*big.Int),
	})
	tx := l.mined(nil)
	l.mu.Unlock()

	l.createdFeed.Send(&chain.CampaignCreated{CampaignId: id, Title: title, Goal: new(big.Int).Set(goal), Recipient: recipient})
	return tx, nil
}

func (a *Account) Donate(ctx context.Context, id *big.Int, value *big.Int) (*types.Transaction, error) {
	l, err := a.write()
	if err != nil {
		return nil, err
	}
	defer l.mu.Unlock()
	c, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	if c.IsCompleted {
		return nil, ErrCampaignComplete
	}
	if value == nil || value.Sign() <= 0 {
		return nil, ErrZeroDonation
	}
	if l.balanceOf(a.from).Cmp(value) < 0 {
		return nil, ErrInsufficientFund
	}
	l.balances[a.from] = new(big.Int).Sub(l.balanceOf(a.from), value)
	if _, seen := c.amounts[a.from]; !seen {
		c.donors = append(c.donors, a.from)
		c.amounts[a.from] = new(big.Int)
	}
	c.amounts[a.from].Add(c.amounts[a.from], value)
	c.TotalDonated.Add(c.TotalDonated, value)
	return l.mined(value), nil
}

func (a *Account) CancelCampaign(ctx context.Context, id *big.Int) (*types.Transaction, error) {
	l, err := a.write()
	if err != nil {
		return nil, err
	}
	c, err := a.adminTarget(l, id)
	if err != nil {
		l.mu.Unlock()
		return nil, err
	}
	c.IsCompleted = true
	tx := l.mined(nil)
	l.mu.Unlock()

	l.canceledFeed.Send(&chain.CampaignCanceled{CampaignId: new(big.Int).Set(id)})
	return tx, nil
}

func (a *Account) ReleaseFunds(ctx context.Context, id *big.Int) (*types.Transaction, error) {
	l, err := a.write()
	if err != nil {
		return nil, err
	}
	c, err := a.adminTarget(l, id)
	if err != nil {
		l.mu.Unlock()
		return nil, err
	}
	c.IsCompleted = true
	total := new(big.Int).Set(c.TotalDonated)
	l.credit(c.Recipient, total)
	recipient := c.Recipient
	tx := l.mined(nil)
	l.mu.Unlock()

	l.releasedFeed.Send(&chain.FundsReleased{CampaignId: new(big.Int).Set(id), Recipient: recipient, Total: total})
	return tx, nil
}

func (a *Account) adminTarget(l *Ledger, id *big.Int) (*campaign, error) {
	if !l.admins[a.from] {
		return nil, ErrNotAdmin
	}
	c, err := l.lookup(id)
	if err != nil {
		return nil, err
	}
	if c.IsCompleted {
		return nil, ErrCampaignComplete
	}
	return c, nil
}

func (a *Account) AddAdmin(ctx context.Context, account common.Address) (*types.Transaction, error) {
	return a.setAdmin(account, true)
}

func (a *Account) RemoveAdmin(ctx context.Context, account common.Address) (*types.Transaction, error) {
	return a.setAdmin(account, false)
}

func (a *Account) setAdmin(account common.Address, admin bool) (*types.Transaction, error) {
	l, err := a.write()
	if err != nil {
		return nil, err
	}
	defer l.mu.Unlock()
	if !l.admins[a.from] {
		return nil, ErrNotAdmin
	}
	if admin {
		l.admins[account] = true
	} else {
		delete(l.admins, account)
	}
	return l.mined(nil), nil
}

// WaitMined returns a successful receipt; ledger writes apply immediately.
func (a *Account) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if tx == nil {
		return nil, fmt.Errorf("wait mined: nil transaction")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		BlockNumber: new(big.Int).SetUint64(tx.Nonce()),
	}, nil
}

func (a *Account) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	l, err := a.read()
	if err != nil {
		return nil, err
	}
	defer l.mu.Unlock()
	return l.balanceOf(account), nil
}

func (a *Account) WatchCampaignCreated(ctx context.Context, sink chan<- *chain.CampaignCreated) (event.Subscription, error) {
	return a.ledger.createdFeed.Subscribe(sink), nil
}

func (a *Account) WatchFundsReleased(ctx context.Context, sink chan<- *chain.FundsReleased) (event.Subscription, error) {
	return a.ledger.releasedFeed.Subscribe(sink), nil
}

func (a *Account) WatchCampaignCanceled(ctx context.Context, sink chan<- *chain.CampaignCanceled) (event.Subscription, error) {
	return a.ledger.canceledFeed.Subscribe(sink), nil
}
