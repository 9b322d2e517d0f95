// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package notify

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/cli/internal/chain"
	"charity/cli/internal/logging"
	"charity/cli/internal/ui/uitest"
)

func TestDispatcherAlerts(t *testing.T) {
	rec := uitest.NewRecorder()
	d := New(rec, nil)
	to := common.HexToAddress("0x00000000000000000000000000000000000000c3")

	d.CampaignCreated(&chain.CampaignCreated{CampaignId: big.NewInt(0), Title: "Wells", Goal: big.NewInt(1), Recipient: to})
	total, _ := chain.ParseEther("50")
	d.FundsReleased(&chain.FundsReleased{CampaignId: big.NewInt(2), Recipient: to, Total: total})
	d.CampaignCanceled(&chain.CampaignCanceled{CampaignId: big.NewInt(7)})

	assert.Equal(t, []string{
		"New campaign created: Wells",
		"Funds released for campaign 2: 50.0 ETH to " + to.Hex(),
		"Campaign 7 has been canceled.",
	}, rec.Alerts)
}

func TestPumpSurvivesPanickingHandler(t *testing.T) {
	var feed event.Feed
	ch := make(chan *chain.CampaignCanceled)
	sub := feed.Subscribe(ch)

	ctx, cancel := context.WithCancel(context.Background())
	seen := make(chan int64, 2)
	done := make(chan struct{})
	go func() {
		defer close(done)
		Pump(ctx, logging.Discard(), chain.EventCampaignCanceled, sub, ch, func(ev *chain.CampaignCanceled) {
			if ev.CampaignId.Sign() == 0 {
				panic("boom")
			}
			seen <- ev.CampaignId.Int64()
		})
	}()

	feed.Send(&chain.CampaignCanceled{CampaignId: big.NewInt(0)})
	feed.Send(&chain.CampaignCanceled{CampaignId: big.NewInt(5)})

	select {
	case id := <-seen:
		assert.Equal(t, int64(5), id)
	case <-time.After(time.Second):
		t.Fatal("second event not handled")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump did not stop")
	}
	require.Zero(t, feed.Send(&chain.CampaignCanceled{CampaignId: big.NewInt(1)}), "subscription should be released")
}
