// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// Event names as declared in the contract ABI.
const (
	EventCampaignCreated  = "CampaignCreated"
	EventDonationReceived = "DonationReceived"
	EventFundsReleased    = "FundsReleased"
	EventCampaignCanceled = "CampaignCanceled"
	EventGoalMet          = "goalMet"
)

// CampaignCreated is emitted by createCampaign.
type CampaignCreated struct {
	CampaignId *big.Int
	Title      string
	Goal       *big.Int
	Recipient  common.Address
	Raw        types.Log
}

// DonationReceived is emitted by donate. Declared for decoding only.
type DonationReceived struct {
	CampaignId *big.Int
	Donor      common.Address
	Amount     *big.Int
	Raw        types.Log
}

// FundsReleased is emitted by releaseFunds.
type FundsReleased struct {
	CampaignId *big.Int
	Recipient  common.Address
	Total      *big.Int
	Raw        types.Log
}

// CampaignCanceled is emitted by cancelCampaign.
type CampaignCanceled struct {
	CampaignId *big.Int
	Raw        types.Log
}

// GoalMet is emitted when a donation reaches the goal. Declared for decoding only.
type GoalMet struct {
	CampaignId *big.Int
	Raw        types.Log
}

func (c *Contract) WatchCampaignCreated(ctx context.Context, sink chan<- *CampaignCreated) (event.Subscription, error) {
	return watch(ctx, c, EventCampaignCreated, sink, func(ev *CampaignCreated, l types.Log) { ev.Raw = l })
}

func (c *Contract) WatchFundsReleased(ctx context.Context, sink chan<- *FundsReleased) (event.Subscription, error) {
	return watch(ctx, c, EventFundsReleased, sink, func(ev *FundsReleased, l types.Log) { ev.Raw = l })
}

func (c *Contract) WatchCampaignCanceled(ctx context.Context, sink chan<- *CampaignCanceled) (event.Subscription, error) {
	return watch(ctx, c, EventCampaignCanceled, sink, func(ev *CampaignCanceled, l types.Log) { ev.Raw = l })
}

// unpack decodes a raw log of the named event into out.
func (c *Contract) unpack(out interface{}, name string, l types.Log) error {
	return c.bound.UnpackLog(out, name, l)
}

// watch subscribes to one event and forwards decoded values to sink until the
// subscription fails or is unsubscribed.
func watch[T any](ctx context.Context, c *Contract, name string, sink chan<- *T, setRaw func(*T, types.Log)) (event.Subscription, error) {
	logs, sub, err := c.bound.WatchLogs(&bind.WatchOpts{Context: ctx}, name)
	if err != nil {
		return nil, err
	}
	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case l := <-logs:
				ev := new(T)
				if err := c.unpack(ev, name, l); err != nil {
					return err
				}
				setRaw(ev, l)
				select {
				case sink <- ev:
				case err := <-sub.Err():
					return err
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}
