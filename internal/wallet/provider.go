// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package wallet connects the CLI to a signing account. A Provider plays the
// role of an injected browser wallet: it lists accounts and signs transactions.
// The Connector runs the connect and logout flows against the session.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"charity/cli/internal/keychain"
	"charity/cli/internal/logging"
)

// EnvPrivateKey overrides the keychain-stored key.
const EnvPrivateKey = "CHARITY_PRIVATE_KEY"

var (
	// ErrUnknownAccount is returned when asked to sign for an account the provider does not hold.
	ErrUnknownAccount = errors.New("account is not managed by this wallet")
	errEmptyAccounts  = errors.New("wallet returned no accounts")
)

// Provider is the wallet capability.
type Provider interface {
	// RequestAccounts returns the accounts the user authorizes, first one primary.
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	// Transactor returns signing options for account on the given chain.
	Transactor(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error)
}

// KeyProvider holds a single secp256k1 key.
type KeyProvider struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

var _ Provider = (*KeyProvider)(nil)

// NewKeyProvider parses a hex private key, with or without 0x. The key is
// registered with the log masker.
func NewKeyProvider(hexKey string) (*KeyProvider, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	logging.AddSecret(hexKey)
	return &KeyProvider{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// Address returns the account derived from the key.
func (p *KeyProvider) Address() common.Address { return p.address }

func (p *KeyProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []common.Address{p.address}, nil
}

func (p *KeyProvider) Transactor(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	if account != p.address {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, account.Hex())
	}
	opts, err := bind.NewKeyedTransactorWithChainID(p.key, chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

// KeySource is where a stored key can be loaded from. *keychain.Manager satisfies it.
type KeySource interface {
	LoadWalletKey() (string, error)
}

// Discover returns the configured provider: the key in CHARITY_PRIVATE_KEY
// first, then the key stored in keys. It returns a nil Provider and no error
// when no key is configured anywhere.
func Discover(keys KeySource) (Provider, error) {
	if v := strings.TrimSpace(os.Getenv(EnvPrivateKey)); v != "" {
		p, err := NewKeyProvider(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvPrivateKey, err)
		}
		return p, nil
	}
	if keys == nil {
		return nil, nil
	}
	stored, err := keys.LoadWalletKey()
	if errors.Is(err, keychain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p, err := NewKeyProvider(stored)
	if err != nil {
		return nil, fmt.Errorf("stored wallet key: %w", err)
	}
	return p, nil
}
