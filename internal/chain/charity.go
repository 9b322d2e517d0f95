// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package chain binds the deployed Charity contract. It exposes the typed call
// interface the rest of the CLI depends on, a go-ethereum backed implementation
// of it, and the unit and address helpers used to marshal user input.
package chain

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

//go:embed charity.abi.json
var charityABIJSON string

// CharityABI is the parsed interface description of the contract.
var CharityABI = mustParseABI(charityABIJSON)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("chain: invalid embedded ABI: %v", err))
	}
	return parsed
}

// ErrNoSigner is returned by state-changing calls on a read-only handle.
var ErrNoSigner = errors.New("no wallet signer available; run 'charity wallet import' and 'charity connect'")

// Campaign is the read-only projection returned by getCampaign.
type Campaign struct {
	Title        string
	Description  string
	Recipient    common.Address
	Goal         *big.Int
	TotalDonated *big.Int
	CreationTime *big.Int
	IsCompleted  bool
	Creator      common.Address
}

// Charity is the typed call interface of the remote contract.
type Charity interface {
	GetCampaignCount(ctx context.Context) (*big.Int, error)
	GetCampaign(ctx context.Context, id *big.Int) (Campaign, error)
	GetDonors(ctx context.Context, id *big.Int) ([]common.Address, error)
	GetDonationAmountByDonor(ctx context.Context, id *big.Int, donor common.Address) (*big.Int, error)
	IsAdminStatus(ctx context.Context, account common.Address) (bool, error)

	CreateCampaign(ctx context.Context, title, description string, recipient common.Address, goal *big.Int) (*types.Transaction, error)
	// Donate attaches value to the call instead of passing it as a parameter.
	Donate(ctx context.Context, id *big.Int, value *big.Int) (*types.Transaction, error)
	CancelCampaign(ctx context.Context, id *big.Int) (*types.Transaction, error)
	ReleaseFunds(ctx context.Context, id *big.Int) (*types.Transaction, error)
	AddAdmin(ctx context.Context, account common.Address) (*types.Transaction, error)
	RemoveAdmin(ctx context.Context, account common.Address) (*types.Transaction, error)

	// WaitMined blocks until tx is included and fails when it reverted.
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	// BalanceAt reads the native balance of account from the same node.
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)

	WatchCampaignCreated(ctx context.Context, sink chan<- *CampaignCreated) (event.Subscription, error)
	WatchFundsReleased(ctx context.Context, sink chan<- *FundsReleased) (event.Subscription, error)
	WatchCampaignCanceled(ctx context.Context, sink chan<- *CampaignCanceled) (event.Subscription, error)
}

// Backend is what the binding needs from a node connection. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// Contract is the go-ethereum implementation of Charity.
type Contract struct {
	address common.Address
	backend Backend
	bound   *bind.BoundContract
	opts    *bind.TransactOpts
}

var _ Charity = (*Contract)(nil)

// Bind returns a handle to the contract at address. A nil opts yields a
// read-only handle whose state-changing calls fail with ErrNoSigner.
func Bind(address common.Address, backend Backend, opts *bind.TransactOpts) *Contract {
	return &Contract{
		address: address,
		backend: backend,
		bound:   bind.NewBoundContract(address, CharityABI, backend, backend, backend),
		opts:    opts,
	}
}

// Address returns the bound contract address.
func (c *Contract) Address() common.Address { return c.address }

func (c *Contract) callOpts(ctx context.Context) *bind.CallOpts {
	opts := &bind.CallOpts{Context: ctx}
	if c.opts != nil {
		opts.From = c.opts.From
	}
	return opts
}

func (c *Contract) call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := c.bound.Call(c.callOpts(ctx), &out, method, params...); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return out, nil
}

func (c *Contract) transact(ctx context.Context, value *big.Int, method string, params ...interface{}) (*types.Transaction, error) {
	if c.opts == nil {
		return nil, ErrNoSigner
	}
	opts := *c.opts
	opts.Context = ctx
	opts.Value = value
	return c.bound.Transact(&opts, method, params...)
}

func (c *Contract) GetCampaignCount(ctx context.Context) (*big.Int, error) {
	out, err := c.call(ctx, "getCampaignCount")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Contract) GetCampaign(ctx context.Context, id *big.Int) (Campaign, error) {
	out, err := c.call(ctx, "getCampaign", id)
	if err != nil {
		return Campaign{}, err
	}
	if len(out) != 8 {
		return Campaign{}, fmt.Errorf("getCampaign: unexpected %d return values", len(out))
	}
	return Campaign{
		Title:        *abi.ConvertType(out[0], new(string)).(*string),
		Description:  *abi.ConvertType(out[1], new(string)).(*string),
		Recipient:    *abi.ConvertType(out[2], new(common.Address)).(*common.Address),
		Goal:         *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		TotalDonated: *abi.ConvertType(out[4], new(*big.Int)).(**big.Int),
		CreationTime: *abi.ConvertType(out[5], new(*big.Int)).(**big.Int),
		IsCompleted:  *abi.ConvertType(out[6], new(bool)).(*bool),
		Creator:      *abi.ConvertType(out[7], new(common.Address)).(*common.Address),
	}, nil
}

func (c *Contract) GetDonors(ctx context.Context, id *big.Int) ([]common.Address, error) {
	out, err := c.call(ctx, "getDonors", id)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address), nil
}

func (c *Contract) GetDonationAmountByDonor(ctx context.Context, id *big.Int, donor common.Address) (*big.Int, error) {
	out, err := c.call(ctx, "getDonationAmountByDonor", id, donor)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Contract) IsAdminStatus(ctx context.Context, account common.Address) (bool, error) {
	out, err := c.call(ctx, "isAdminStatus", account)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (c *Contract) CreateCampaign(ctx context.Context, title, description string, recipient common.Address, goal *big.Int) (*types.Transaction, error) {
	return c.transact(ctx, nil, "createCampaign", title, description, recipient, goal)
}

func (c *Contract) Donate(ctx context.Context, id *big.Int, value *big.Int) (*types.Transaction, error) {
	return c.transact(ctx, value, "donate", id)
}

func (c *Contract) CancelCampaign(ctx context.Context, id *big.Int) (*types.Transaction, error) {
	return c.transact(ctx, nil, "cancelCampaign", id)
}

func (c *Contract) ReleaseFunds(ctx context.Context, id *big.Int) (*types.Transaction, error) {
	return c.transact(ctx, nil, "releaseFunds", id)
}

func (c *Contract) AddAdmin(ctx context.Context, account common.Address) (*types.Transaction, error) {
	return c.transact(ctx, nil, "addAdmin", account)
}

func (c *Contract) RemoveAdmin(ctx context.Context, account common.Address) (*types.Transaction, error) {
	return c.transact(ctx, nil, "removeAdmin", account)
}

func (c *Contract) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("transaction %s reverted in block %s", tx.Hash().Hex(), receipt.BlockNumber)
	}
	return receipt, nil
}

func (c *Contract) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	return c.backend.BalanceAt(ctx, account, nil)
}
