// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package actions implements the state-changing user actions. Each one checks
// its input locally, sends a single transaction, waits for it to be mined, and
// then either confirms and navigates or shows the failure message.
package actions

import (
	"context"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"charity/cli/internal/chain"
	"charity/cli/internal/errors"
	"charity/cli/internal/gateway"
	"charity/cli/internal/logging"
	"charity/cli/internal/session"
	"charity/cli/internal/ui"
)

const (
	msgNotLoggedIn      = "User not logged in."
	msgNoCampaign       = "No campaign selected."
	msgInvalidCampaign  = "Please enter valid campaign details."
	msgInvalidDonation  = "Please enter a valid donation amount."
	msgInvalidAdmin     = "Invalid admin address."
	msgCampaignCreated  = "Campaign created successfully!"
	msgCampaignCanceled = "Campaign canceled successfully!"
	msgFundsReleased    = "Funds released successfully!"
	msgAdminAdded       = "Admin added successfully!"
	msgAdminRemoved     = "Admin removed successfully!"
)

// Deps are the capabilities the actions use.
type Deps struct {
	Contracts gateway.Initializer
	Session   *session.Store
	Notifier  ui.Notifier
	Navigator ui.Navigator
	Log       *slog.Logger
	// Pending, when set, is told when a transaction is waiting to be mined.
	Pending func(tx *types.Transaction) (done func())
}

type Actions struct {
	Deps
}

func New(d Deps) *Actions {
	if d.Log == nil {
		d.Log = logging.Discard()
	}
	return &Actions{Deps: d}
}

// send is the shared tail of every action: ensure the gateway, submit, wait
// for the receipt. Failures are shown verbatim and logged under op.
func (a *Actions) send(ctx context.Context, op string, submit func(chain.Charity) (*types.Transaction, error)) *errors.E {
	c, err := a.Contracts.EnsureInitialized(ctx)
	if err == nil {
		var tx *types.Transaction
		tx, err = submit(c)
		if err == nil {
			a.Log.Debug("transaction sent", "op", op, "tx", tx.Hash().Hex())
			err = a.wait(ctx, c, tx)
		}
	}
	if err != nil {
		a.Log.Error(op+" failed", "error", err, "category", logging.ClassifyRPCError(err).String())
		return a.notice(errors.Wrap(errors.RemoteRejected, op, err))
	}
	return nil
}

func (a *Actions) wait(ctx context.Context, c chain.Charity, tx *types.Transaction) error {
	if a.Pending != nil {
		done := a.Pending(tx)
		defer done()
	}
	_, err := c.WaitMined(ctx, tx)
	return err
}

func (a *Actions) requireUser() (common.Address, *errors.E) {
	addr, ok := a.Session.Address()
	if !ok {
		return common.Address{}, a.notice(errors.New(errors.SessionMissing, msgNotLoggedIn))
	}
	return common.HexToAddress(addr), nil
}

func (a *Actions) requireCampaign() (*big.Int, *errors.E) {
	id, ok := a.Session.SelectedCampaign()
	if !ok {
		return nil, a.notice(errors.New(errors.SessionMissing, msgNoCampaign))
	}
	return new(big.Int).SetUint64(id), nil
}

func (a *Actions) invalid(msg string) *errors.E {
	return a.notice(errors.New(errors.Validation, msg))
}

// notice alerts the user with e's text and returns e.
func (a *Actions) notice(e *errors.E) *errors.E {
	a.Notifier.Alert(e.Notice())
	return e
}

// CreateCampaign opens a campaign with goal given in ether.
func (a *Actions) CreateCampaign(ctx context.Context, title, description, recipient, goal string) *errors.E {
	wei, err := chain.ParsePositiveEther(goal)
	if title == "" || description == "" || !chain.IsAddress(recipient) || err != nil {
		return a.invalid(msgInvalidCampaign)
	}
	if _, e := a.requireUser(); e != nil {
		return e
	}
	if e := a.send(ctx, "create campaign", func(c chain.Charity) (*types.Transaction, error) {
		return c.CreateCampaign(ctx, title, description, common.HexToAddress(recipient), wei)
	}); e != nil {
		return e
	}
	a.Notifier.Alert(msgCampaignCreated)
	a.Navigator.Navigate(ctx, ui.PageCampaigns)
	return nil
}

// Donate sends amount ether to the selected campaign.
func (a *Actions) Donate(ctx context.Context, amount string) *errors.E {
	wei, err := chain.ParsePositiveEther(amount)
	if err != nil {
		return a.invalid(msgInvalidDonation)
	}
	if _, e := a.requireUser(); e != nil {
		return e
	}
	id, e := a.requireCampaign()
	if e != nil {
		return e
	}
	if e := a.send(ctx, "donate", func(c chain.Charity) (*types.Transaction, error) {
		return c.Donate(ctx, id, wei)
	}); e != nil {
		return e
	}
	a.Notifier.Alert("Thank you for donating " + strings.TrimSuffix(chain.FormatEther(wei), ".0") + " ETH!")
	a.Navigator.Navigate(ctx, ui.PageCampaigns)
	return nil
}

// CancelCampaign closes the selected campaign without paying out.
func (a *Actions) CancelCampaign(ctx context.Context) *errors.E {
	return a.closeCampaign(ctx, "cancel campaign", msgCampaignCanceled, chain.Charity.CancelCampaign)
}

// ReleaseFunds pays the selected campaign's donations to its recipient.
func (a *Actions) ReleaseFunds(ctx context.Context) *errors.E {
	return a.closeCampaign(ctx, "release funds", msgFundsReleased, chain.Charity.ReleaseFunds)
}

func (a *Actions) closeCampaign(ctx context.Context, op, success string, call func(chain.Charity, context.Context, *big.Int) (*types.Transaction, error)) *errors.E {
	if _, e := a.requireUser(); e != nil {
		return e
	}
	id, e := a.requireCampaign()
	if e != nil {
		return e
	}
	if e := a.send(ctx, op, func(c chain.Charity) (*types.Transaction, error) {
		return call(c, ctx, id)
	}); e != nil {
		return e
	}
	a.Notifier.Alert(success)
	a.Navigator.Navigate(ctx, ui.PageCampaigns)
	return nil
}

// AddAdmin grants admin rights to addr.
func (a *Actions) AddAdmin(ctx context.Context, addr string) *errors.E {
	return a.setAdmin(ctx, addr, "add admin", msgAdminAdded, chain.Charity.AddAdmin)
}

// RemoveAdmin revokes admin rights from addr.
func (a *Actions) RemoveAdmin(ctx context.Context, addr string) *errors.E {
	return a.setAdmin(ctx, addr, "remove admin", msgAdminRemoved, chain.Charity.RemoveAdmin)
}

func (a *Actions) setAdmin(ctx context.Context, addr, op, success string, call func(chain.Charity, context.Context, common.Address) (*types.Transaction, error)) *errors.E {
	addr = strings.TrimSpace(addr)
	if !chain.IsAddress(addr) {
		return a.invalid(msgInvalidAdmin)
	}
	if _, e := a.requireUser(); e != nil {
		return e
	}
	if e := a.send(ctx, op, func(c chain.Charity) (*types.Transaction, error) {
		return call(c, ctx, common.HexToAddress(addr))
	}); e != nil {
		return e
	}
	a.Notifier.Alert(success)
	return nil
}
