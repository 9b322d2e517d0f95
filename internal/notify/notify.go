// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package notify turns contract events into user notices.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/event"

	"charity/cli/internal/chain"
	"charity/cli/internal/logging"
	"charity/cli/internal/ui"
)

// Dispatcher logs each observed event and shows a notice for it.
type Dispatcher struct {
	notifier ui.Notifier
	log      *slog.Logger
}

func New(notifier ui.Notifier, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = logging.Discard()
	}
	return &Dispatcher{notifier: notifier, log: log}
}

func (d *Dispatcher) CampaignCreated(ev *chain.CampaignCreated) {
	d.log.Info("campaign created",
		"id", ev.CampaignId, "title", ev.Title, "goal", chain.FormatEther(ev.Goal), "recipient", ev.Recipient.Hex())
	d.notifier.Alert("New campaign created: " + ev.Title)
}

func (d *Dispatcher) FundsReleased(ev *chain.FundsReleased) {
	total := chain.FormatEther(ev.Total)
	d.log.Info("funds released", "id", ev.CampaignId, "recipient", ev.Recipient.Hex(), "total", total)
	d.notifier.Alert(fmt.Sprintf("Funds released for campaign %s: %s ETH to %s", ev.CampaignId, total, ev.Recipient.Hex()))
}

func (d *Dispatcher) CampaignCanceled(ev *chain.CampaignCanceled) {
	d.log.Info("campaign canceled", "id", ev.CampaignId)
	d.notifier.Alert(fmt.Sprintf("Campaign %s has been canceled.", ev.CampaignId))
}

// Pump delivers values received on ch to handle until ctx is done or the
// subscription ends. A panicking handler is logged and the pump keeps going.
func Pump[T any](ctx context.Context, log *slog.Logger, name string, sub event.Subscription, ch <-chan *T, handle func(*T)) {
	defer sub.Unsubscribe()
	for {
		select {
		case v := <-ch:
			deliver(log, name, v, handle)
		case err, ok := <-sub.Err():
			if ok && err != nil {
				log.Warn("event subscription ended", "event", name, "error", err, "category", logging.ClassifyRPCError(err).String())
			}
			return
		case <-ctx.Done():
			return
		}
	}
}

func deliver[T any](log *slog.Logger, name string, v *T, handle func(*T)) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("event handler failed", "event", name, "panic", fmt.Sprint(r))
		}
	}()
	handle(v)
}
