// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package gateway owns the process-wide contract handle. It is created lazily
// on first use, bound to the connected account when one is available, and
// subscribes the notification dispatcher to the contract's events.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"charity/cli/internal/chain"
	"charity/cli/internal/logging"
	"charity/cli/internal/notify"
	"charity/cli/internal/session"
	"charity/cli/internal/wallet"
)

// Initializer hands out the initialized contract handle.
type Initializer interface {
	EnsureInitialized(ctx context.Context) (chain.Charity, error)
}

// Binder builds a contract handle acting as from. A nil from asks for a
// read-only handle.
type Binder interface {
	Bind(ctx context.Context, from *common.Address) (chain.Charity, error)
	Close()
}

// BindFunc adapts a function to Binder with a no-op Close.
type BindFunc func(ctx context.Context, from *common.Address) (chain.Charity, error)

func (f BindFunc) Bind(ctx context.Context, from *common.Address) (chain.Charity, error) {
	return f(ctx, from)
}

func (BindFunc) Close() {}

// Gateway is safe for concurrent use. At most one handle is built per
// Gateway; a failed attempt is retried on the next call.
type Gateway struct {
	mu       sync.Mutex
	binder   Binder
	provider wallet.Provider
	session  *session.Store
	dispatch *notify.Dispatcher
	log      *slog.Logger

	charity chain.Charity
	subs    int
	cancel  context.CancelFunc
	pumps   sync.WaitGroup
}

var _ Initializer = (*Gateway)(nil)

// New returns an uninitialized gateway. provider and dispatch may be nil.
func New(binder Binder, provider wallet.Provider, store *session.Store, dispatch *notify.Dispatcher, log *slog.Logger) *Gateway {
	if log == nil {
		log = logging.Discard()
	}
	return &Gateway{binder: binder, provider: provider, session: store, dispatch: dispatch, log: log}
}

// EnsureInitialized returns the contract handle, building it on first use.
func (g *Gateway) EnsureInitialized(ctx context.Context) (chain.Charity, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.charity != nil {
		return g.charity, nil
	}

	from, err := g.account(ctx)
	if err != nil {
		return nil, err
	}
	c, err := g.binder.Bind(ctx, from)
	if from != nil && errors.Is(err, wallet.ErrUnknownAccount) {
		// The wallet key changed since connect. Reads still work; writes
		// report the missing signer.
		g.log.Warn("connected account is not held by the wallet, continuing read-only; run 'charity connect' to reconnect",
			"account", from.Hex())
		from = nil
		c, err = g.binder.Bind(ctx, nil)
	}
	if err != nil {
		g.log.Debug("contract initialization failed", "error", err, "category", logging.ClassifyRPCError(err).String())
		return nil, err
	}
	if from != nil {
		g.log.Debug("contract bound", "account", from.Hex())
	} else {
		g.log.Debug("contract bound read-only")
	}
	g.subscribe(ctx, c)
	g.charity = c
	return c, nil
}

// Subscriptions reports how many contract event subscriptions are active.
func (g *Gateway) Subscriptions() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.subs
}

// account picks the signer: the session's connected address, otherwise the
// provider's first account, otherwise none.
func (g *Gateway) account(ctx context.Context) (*common.Address, error) {
	if g.session != nil {
		if addr, ok := g.session.Address(); ok && common.IsHexAddress(addr) {
			a := common.HexToAddress(addr)
			return &a, nil
		}
	}
	if g.provider == nil {
		return nil, nil
	}
	accounts, err := g.provider.RequestAccounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, nil
	}
	return &accounts[0], nil
}

func (g *Gateway) subscribe(ctx context.Context, c chain.Charity) {
	if g.dispatch == nil {
		return
	}
	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	g.cancel = cancel

	created := make(chan *chain.CampaignCreated, 16)
	if sub, err := c.WatchCampaignCreated(subCtx, created); err != nil {
		g.skip(chain.EventCampaignCreated, err)
	} else {
		g.subs++
		g.pump(func() { notify.Pump(subCtx, g.log, chain.EventCampaignCreated, sub, created, g.dispatch.CampaignCreated) })
	}

	released := make(chan *chain.FundsReleased, 16)
	if sub, err := c.WatchFundsReleased(subCtx, released); err != nil {
		g.skip(chain.EventFundsReleased, err)
	} else {
		g.subs++
		g.pump(func() { notify.Pump(subCtx, g.log, chain.EventFundsReleased, sub, released, g.dispatch.FundsReleased) })
	}

	canceled := make(chan *chain.CampaignCanceled, 16)
	if sub, err := c.WatchCampaignCanceled(subCtx, canceled); err != nil {
		g.skip(chain.EventCampaignCanceled, err)
	} else {
		g.subs++
		g.pump(func() { notify.Pump(subCtx, g.log, chain.EventCampaignCanceled, sub, canceled, g.dispatch.CampaignCanceled) })
	}
}

func (g *Gateway) skip(name string, err error) {
	g.log.Debug("event subscription unavailable", "event", name, "error", err)
}

func (g *Gateway) pump(run func()) {
	g.pumps.Add(1)
	go func() {
		defer g.pumps.Done()
		run()
	}()
}

// Close stops event delivery and releases the node connection.
func (g *Gateway) Close() {
	g.mu.Lock()
	cancel := g.cancel
	g.cancel = nil
	g.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	g.pumps.Wait()
	g.binder.Close()
}
