// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chain

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharityABIDeclaresContractSurface(t *testing.T) {
	for _, m := range []string{
		"getCampaignCount", "getCampaign", "getDonors", "getDonationAmountByDonor",
		"isAdminStatus", "isAdmin", "createCampaign", "donate", "cancelCampaign",
		"releaseFunds", "addAdmin", "removeAdmin",
	} {
		_, ok := CharityABI.Methods[m]
		assert.True(t, ok, "method %s", m)
	}
	assert.True(t, CharityABI.Methods["donate"].IsPayable())
	assert.Len(t, CharityABI.Methods["getCampaign"].Outputs, 8)

	for _, e := range []string{
		EventCampaignCreated, EventDonationReceived, EventFundsReleased,
		EventCampaignCanceled, EventGoalMet,
	} {
		_, ok := CharityABI.Events[e]
		assert.True(t, ok, "event %s", e)
	}
}

func TestUnpackDonationReceived(t *testing.T) {
	ev := CharityABI.Events[EventDonationReceived]
	donor := common.HexToAddress("0x00000000000000000000000000000000000000b2")
	data, err := ev.Inputs.NonIndexed().Pack(big.NewInt(42))
	require.NoError(t, err)

	l := types.Log{
		Topics: []common.Hash{ev.ID, common.BigToHash(big.NewInt(3)), common.BytesToHash(donor.Bytes())},
		Data:   data,
	}
	c := Bind(common.HexToAddress("0x6263CD997403dBCC6A457b9594601947eb3F6Acd"), nil, nil)

	var got DonationReceived
	require.NoError(t, c.unpack(&got, EventDonationReceived, l))
	assert.Equal(t, int64(3), got.CampaignId.Int64())
	assert.Equal(t, donor, got.Donor)
	assert.Equal(t, int64(42), got.Amount.Int64())
}

func TestReadOnlyContractRejectsWrites(t *testing.T) {
	c := Bind(common.Address{}, nil, nil)
	_, err := c.CreateCampaign(context.Background(), "t", "d", common.Address{}, big.NewInt(1))
	assert.ErrorIs(t, err, ErrNoSigner)
	_, err = c.Donate(context.Background(), big.NewInt(0), big.NewInt(1))
	assert.ErrorIs(t, err, ErrNoSigner)
}
