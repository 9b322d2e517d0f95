// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"charity/cli/internal/actions"
	"charity/cli/internal/admingate"
	"charity/cli/internal/chain"
	"charity/cli/internal/config"
	cherrors "charity/cli/internal/errors"
	"charity/cli/internal/gateway"
	"charity/cli/internal/httperrors"
	"charity/cli/internal/keychain"
	"charity/cli/internal/logging"
	"charity/cli/internal/notify"
	"charity/cli/internal/session"
	"charity/cli/internal/terminal"
	"charity/cli/internal/views"
	"charity/cli/internal/wallet"
)

// app is the set of components one invocation works with.
type app struct {
	cfg       config.Config
	log       *slog.Logger
	console   *terminal.Console
	session   *session.Store
	gateway   *gateway.Gateway
	gate      *admingate.Gate
	connector *wallet.Connector
	views     *views.Views
	actions   *actions.Actions
	router    *router
}

// newApp loads configuration, applies the global flags and wires every
// component. Callers must Close the app.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagRPC != "" {
		cfg.RPCURL = flagRPC
	}
	if flagContract != "" {
		cfg.ContractAddress = flagContract
	}
	if !chain.IsAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", cfg.ContractAddress)
	}
	level := cfg.LogLevel
	if flagVerbose || os.Getenv("CHARITY_VERBOSE") == "1" {
		level = "debug"
	}
	log := logging.New(os.Stderr, level)

	kv, err := session.DefaultFileKV()
	if err != nil {
		return nil, err
	}
	store := session.NewStore(kv)

	var keys wallet.KeySource
	if km, err := keychain.GetManager(); err == nil {
		keys = km
	} else {
		log.Debug("keychain unavailable", "error", err)
	}
	provider, err := wallet.Discover(keys)
	if err != nil {
		return nil, err
	}

	console := terminal.NewConsole(cmd.OutOrStdout())
	binder := &gateway.RPCBinder{
		URL:      cfg.RPCURL,
		Contract: common.HexToAddress(cfg.ContractAddress),
		ChainID:  cfg.ChainID,
		Provider: provider,
	}
	gw := gateway.New(binder, provider, store, notify.New(console, log), log)
	gate := admingate.New(gw, store, console, console, log)

	a := &app{cfg: cfg, log: log, console: console, session: store, gateway: gw, gate: gate}
	a.router = &router{app: a}
	a.connector = wallet.NewConnector(provider, store, console, a.router, log)
	a.views = views.New(views.Deps{
		Contracts: gw,
		Session:   store,
		Notifier:  console,
		Navigator: a.router,
		Surface:   console,
		Gate:      gate,
		Log:       log,
	}, cfg.USDRate)
	a.actions = actions.New(actions.Deps{
		Contracts: gw,
		Session:   store,
		Notifier:  console,
		Navigator: a.router,
		Log:       log,
		Pending:   pendingIndicator(term.IsTerminal(int(os.Stderr.Fd()))),
	})
	log.Debug("configuration loaded", "rpc", cfg.RPCURL, "contract", cfg.ContractAddress, "chain_id", cfg.ChainID)
	return a, nil
}

func (a *app) Close() {
	a.gateway.Close()
}

// settle decides the exit status of a handled failure. The user has already
// been told; only node connectivity problems fail the process.
func (a *app) settle(action string, err error) error {
	if err == nil {
		return nil
	}
	if kind, ok := cherrors.KindOf(err); ok {
		a.log.Debug("command failed", "action", action, "kind", string(kind))
	}
	if httperrors.IsNetworkError(err) {
		return httperrors.FormatNetworkError(os.Stderr, err, action, a.cfg.RPCURL)
	}
	return nil
}

// settleAction is settle for the typed results of the actions package.
func (a *app) settleAction(action string, e *cherrors.E) error {
	if e == nil {
		return nil
	}
	return a.settle(action, e)
}

// withApp builds the app for a command body and closes it afterwards.
func withApp(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		return run(cmd, a, args)
	}
}
