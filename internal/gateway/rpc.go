// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package gateway

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"charity/cli/internal/chain"
	"charity/cli/internal/wallet"
)

// Dialer opens a node connection.
type Dialer func(ctx context.Context, rawURL string) (chain.Backend, error)

// DialEthclient is the default Dialer.
func DialEthclient(ctx context.Context, rawURL string) (chain.Backend, error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// RPCBinder binds the contract over JSON-RPC. A zero ChainID is read from
// the node before signing.
type RPCBinder struct {
	URL      string
	Contract common.Address
	ChainID  uint64
	Provider wallet.Provider
	Dial     Dialer

	mu      sync.Mutex
	backend chain.Backend
}

func (b *RPCBinder) Bind(ctx context.Context, from *common.Address) (chain.Charity, error) {
	dial := b.Dial
	if dial == nil {
		dial = DialEthclient
	}
	backend, err := dial(ctx, b.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", b.URL, err)
	}

	var opts *bind.TransactOpts
	if from != nil && b.Provider != nil {
		opts, err = b.transactor(ctx, backend, *from)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	b.mu.Lock()
	b.backend = backend
	b.mu.Unlock()
	return chain.Bind(b.Contract, backend, opts), nil
}

func (b *RPCBinder) transactor(ctx context.Context, backend chain.Backend, from common.Address) (*bind.TransactOpts, error) {
	chainID := new(big.Int).SetUint64(b.ChainID)
	if b.ChainID == 0 {
		id, err := backend.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("read chain id: %w", err)
		}
		chainID = id
	}
	return b.Provider.Transactor(ctx, from, chainID)
}

func (b *RPCBinder) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.backend != nil {
		b.backend.Close()
		b.backend = nil
	}
}
