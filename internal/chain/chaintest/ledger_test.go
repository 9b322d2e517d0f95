// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chaintest

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/cli/internal/chain"
)

var (
	owner     = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	donor     = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	recipient = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

func eth(s string) *big.Int {
	v, err := chain.ParseEther(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCreateCampaign(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(owner)
	l.SetClock(func() time.Time { return time.Unix(1700000000, 0) })
	c := l.Bind(owner)

	_, err := c.CreateCampaign(ctx, "Test Campaign", "This is a test campaign.", owner, eth("100"))
	require.NoError(t, err)

	got, err := c.GetCampaign(ctx, big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, "Test Campaign", got.Title)
	assert.Equal(t, owner, got.Recipient)
	assert.Equal(t, 0, got.Goal.Cmp(eth("100")))
	assert.Equal(t, 0, got.TotalDonated.Sign())
	assert.Equal(t, int64(1700000000), got.CreationTime.Int64())
	assert.False(t, got.IsCompleted)
	assert.Equal(t, owner, got.Creator)

	_, err = c.CreateCampaign(ctx, "zero", "goal", owner, big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestDonateRecordsDonorsInOrder(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(owner)
	l.Fund(owner, eth("100"))
	l.Fund(donor, eth("100"))
	_, err := l.Bind(owner).CreateCampaign(ctx, "t", "d", recipient, eth("100"))
	require.NoError(t, err)

	_, err = l.Bind(donor).Donate(ctx, big.NewInt(0), eth("10"))
	require.NoError(t, err)
	_, err = l.Bind(owner).Donate(ctx, big.NewInt(0), eth("50"))
	require.NoError(t, err)
	_, err = l.Bind(donor).Donate(ctx, big.NewInt(0), eth("5"))
	require.NoError(t, err)

	c := l.ReadOnly()
	donors, err := c.GetDonors(ctx, big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, []common.Address{donor, owner}, donors)

	amt, err := c.GetDonationAmountByDonor(ctx, big.NewInt(0), donor)
	require.NoError(t, err)
	assert.Equal(t, "15.0", chain.FormatEther(amt))

	got, _ := l.Campaign(0)
	assert.Equal(t, "65.0", chain.FormatEther(got.TotalDonated))
	assert.Equal(t, "85.0", chain.FormatEther(l.Balance(donor)))

	_, err = l.Bind(donor).Donate(ctx, big.NewInt(0), big.NewInt(0))
	assert.ErrorIs(t, err, ErrZeroDonation)
	_, err = l.Bind(donor).Donate(ctx, big.NewInt(7), eth("1"))
	assert.ErrorIs(t, err, ErrUnknownCampaign)
}

func TestReleaseFundsPaysRecipient(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(owner)
	l.Fund(donor, eth("50"))
	_, err := l.Bind(owner).CreateCampaign(ctx, "t", "d", recipient, eth("50"))
	require.NoError(t, err)
	_, err = l.Bind(donor).Donate(ctx, big.NewInt(0), eth("50"))
	require.NoError(t, err)

	_, err = l.Bind(donor).ReleaseFunds(ctx, big.NewInt(0))
	assert.ErrorIs(t, err, ErrNotAdmin)

	tx, err := l.Bind(owner).ReleaseFunds(ctx, big.NewInt(0))
	require.NoError(t, err)
	receipt, err := l.Bind(owner).WaitMined(ctx, tx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), receipt.Status)

	got, _ := l.Campaign(0)
	assert.True(t, got.IsCompleted)
	assert.Equal(t, "50.0", chain.FormatEther(got.TotalDonated))
	assert.Equal(t, "50.0", chain.FormatEther(l.Balance(recipient)))

	_, err = l.Bind(owner).ReleaseFunds(ctx, big.NewInt(0))
	assert.ErrorIs(t, err, ErrCampaignComplete)
}

func TestCancelCampaign(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(owner)
	_, err := l.Bind(owner).CreateCampaign(ctx, "t", "d", owner, eth("100"))
	require.NoError(t, err)

	_, err = l.Bind(owner).CancelCampaign(ctx, big.NewInt(0))
	require.NoError(t, err)

	got, _ := l.Campaign(0)
	assert.True(t, got.IsCompleted)
}

func TestAdminManagement(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(owner)
	c := l.Bind(owner)

	_, err := c.AddAdmin(ctx, donor)
	require.NoError(t, err)
	ok, err := c.IsAdminStatus(ctx, donor)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = c.RemoveAdmin(ctx, donor)
	require.NoError(t, err)
	ok, err = c.IsAdminStatus(ctx, donor)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = l.Bind(donor).AddAdmin(ctx, donor)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestReadOnlyCannotWrite(t *testing.T) {
	l := NewLedger(owner)
	_, err := l.ReadOnly().CreateCampaign(context.Background(), "t", "d", owner, eth("1"))
	assert.ErrorIs(t, err, chain.ErrNoSigner)
	assert.Equal(t, 1, l.Calls())
}

func TestEventsAreDelivered(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(owner)
	c := l.Bind(owner)

	created := make(chan *chain.CampaignCreated, 1)
	sub, err := c.WatchCampaignCreated(ctx, created)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	_, err = c.CreateCampaign(ctx, "Clean water", "wells", recipient, eth("3"))
	require.NoError(t, err)

	select {
	case ev := <-created:
		assert.Equal(t, "Clean water", ev.Title)
		assert.Equal(t, int64(0), ev.CampaignId.Int64())
	case <-time.After(time.Second):
		t.Fatal("CampaignCreated not delivered")
	}
}
