// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package wallet

import (
	"context"
	"log/slog"

	"charity/cli/internal/errors"
	"charity/cli/internal/logging"
	"charity/cli/internal/session"
	"charity/cli/internal/ui"
)

const (
	msgNoProvider = "Please set up a wallet first."
	msgLoggedOut  = "You have been logged out."
)

// Connector runs the connect and logout flows.
type Connector struct {
	provider Provider
	session  *session.Store
	notifier ui.Notifier
	nav      ui.Navigator
	log      *slog.Logger
}

// NewConnector wires a connector. provider may be nil when no wallet is configured.
func NewConnector(provider Provider, store *session.Store, notifier ui.Notifier, nav ui.Navigator, log *slog.Logger) *Connector {
	if log == nil {
		log = logging.Discard()
	}
	return &Connector{provider: provider, session: store, notifier: notifier, nav: nav, log: log}
}

// CheckAvailability reports whether a provider is present and alerts when it is not.
func (c *Connector) CheckAvailability() bool {
	if c.provider == nil {
		c.notifier.Alert(msgNoProvider)
		return false
	}
	return true
}

// Connect asks the provider for accounts, stores the first one and moves to
// the landing page. Failures are shown to the user and leave the session as is.
func (c *Connector) Connect(ctx context.Context) error {
	if !c.CheckAvailability() {
		return errors.New(errors.ProviderMissing, msgNoProvider)
	}
	accounts, err := c.provider.RequestAccounts(ctx)
	if err == nil && len(accounts) == 0 {
		err = errEmptyAccounts
	}
	if err != nil {
		c.notifier.Alert(err.Error())
		c.log.Error("wallet connection failed", "error", err)
		return errors.Wrap(errors.RemoteRejected, "connect wallet", err)
	}
	addr := accounts[0].Hex()
	if err := c.session.SetAddress(addr); err != nil {
		c.notifier.Alert(err.Error())
		c.log.Error("persisting session failed", "error", err)
		return errors.Wrap(errors.SessionMissing, "save session", err)
	}
	c.log.Debug("wallet connected", "address", addr)
	c.notifier.Alert("Connected as " + addr)
	c.nav.Navigate(ctx, ui.PageLanding)
	return nil
}

// Logout clears the session and returns to the entry page.
func (c *Connector) Logout(ctx context.Context) error {
	if err := c.session.Clear(); err != nil {
		c.log.Error("clearing session failed", "error", err)
		return err
	}
	c.notifier.Alert(msgLoggedOut)
	c.nav.Navigate(ctx, ui.PageEntry)
	return nil
}
