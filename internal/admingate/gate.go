// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package admingate decides whether the connected account may see admin-only
// controls. Every check asks the contract; nothing is cached.
package admingate

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"charity/cli/internal/gateway"
	"charity/cli/internal/logging"
	"charity/cli/internal/session"
	"charity/cli/internal/ui"
)

const msgNotLoggedIn = "User not logged in."

type Gate struct {
	contracts gateway.Initializer
	session   *session.Store
	notifier  ui.Notifier
	surface   ui.Surface
	log       *slog.Logger
}

func New(contracts gateway.Initializer, store *session.Store, notifier ui.Notifier, surface ui.Surface, log *slog.Logger) *Gate {
	if log == nil {
		log = logging.Discard()
	}
	return &Gate{contracts: contracts, session: store, notifier: notifier, surface: surface, log: log}
}

// CheckAdminStatus reports the connected account's admin flag. Any failure
// reads as false.
func (g *Gate) CheckAdminStatus(ctx context.Context) bool {
	addr, ok := g.session.Address()
	if !ok {
		g.notifier.Alert(msgNotLoggedIn)
		return false
	}
	c, err := g.contracts.EnsureInitialized(ctx)
	if err != nil {
		g.log.Error("checking admin status failed", "error", err)
		return false
	}
	isAdmin, err := c.IsAdminStatus(ctx, common.HexToAddress(addr))
	if err != nil {
		g.log.Error("checking admin status failed", "error", err, "category", logging.ClassifyRPCError(err).String())
		return false
	}
	return isAdmin
}

// ToggleAdminSection shows the admin region to admins and hides it otherwise.
func (g *Gate) ToggleAdminSection(ctx context.Context) {
	isAdmin := g.CheckAdminStatus(ctx)
	region, ok := g.surface.Region(ui.RegionAdminSection)
	if !ok {
		g.log.Error("admin button section not found")
		return
	}
	region.SetVisible(isAdmin)
}
