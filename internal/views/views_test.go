// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package views

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/cli/internal/admingate"
	"charity/cli/internal/chain"
	"charity/cli/internal/chain/chaintest"
	"charity/cli/internal/gateway"
	"charity/cli/internal/session"
	"charity/cli/internal/ui"
	"charity/cli/internal/ui/uitest"
)

var (
	admin  = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	donorA = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	donorB = common.HexToAddress("0x00000000000000000000000000000000000000b3")
	target = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

type fixture struct {
	views  *Views
	rec    *uitest.Recorder
	ledger *chaintest.Ledger
	store  *session.Store
}

func newFixture(t *testing.T, regions ...string) *fixture {
	t.Helper()
	ledger := chaintest.NewLedger(admin)
	store := session.NewStore(session.NewMemoryKV())
	rec := uitest.NewRecorder(regions...)
	g := gateway.New(gateway.BindFunc(ledger.BindAs), nil, store, nil, nil)
	t.Cleanup(g.Close)
	v := New(Deps{
		Contracts: g,
		Session:   store,
		Notifier:  rec,
		Navigator: rec,
		Surface:   rec,
		Gate:      admingate.New(g, store, rec, rec, nil),
	}, 0)
	v.SetLocation(time.UTC)
	return &fixture{views: v, rec: rec, ledger: ledger, store: store}
}

func eth(s string) *big.Int {
	v, err := chain.ParseEther(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (f *fixture) seed(t *testing.T, titles ...string) {
	t.Helper()
	for _, title := range titles {
		_, err := f.ledger.Bind(admin).CreateCampaign(context.Background(), title, title+" description", target, eth("100"))
		require.NoError(t, err)
	}
}

func TestLoadCampaignList(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Wells", "School", "Clinic")

	require.NoError(t, f.views.LoadCampaignList(context.Background()))

	require.Len(t, f.rec.Cards, 1)
	assert.Equal(t, []ui.CampaignCard{
		{ID: 0, Title: "Wells", Goal: "100.0"},
		{ID: 1, Title: "School", Goal: "100.0"},
		{ID: 2, Title: "Clinic", Goal: "100.0"},
	}, f.rec.Cards[0])
}

func TestLoadCampaignListFailsSoft(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Wells")
	f.ledger.ReadErr = errors.New("connection refused")

	err := f.views.LoadCampaignList(context.Background())
	require.Error(t, err)
	assert.Empty(t, f.rec.Cards)
	assert.Empty(t, f.rec.Alerts)
}

func TestViewSelectsCampaign(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.views.View(context.Background(), 2))

	id, ok := f.store.SelectedCampaign()
	require.True(t, ok)
	assert.Equal(t, uint64(2), id)
	assert.Equal(t, []ui.Page{ui.PageCampaign}, f.rec.Navigations)
}

func TestLoadCampaignDetail(t *testing.T) {
	f := newFixture(t, ui.RegionCancelButton, ui.RegionReleaseButton)
	f.ledger.SetClock(func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC) })
	f.seed(t, "Wells")
	f.ledger.Fund(donorA, eth("10"))
	_, err := f.ledger.Bind(donorA).Donate(context.Background(), big.NewInt(0), eth("2.5"))
	require.NoError(t, err)

	require.NoError(t, f.store.SetAddress(donorA.Hex()))
	require.NoError(t, f.store.SetSelectedCampaign(0))

	require.NoError(t, f.views.LoadCampaignDetail(context.Background()))

	require.Len(t, f.rec.Details, 1)
	assert.Equal(t, ui.CampaignDetail{
		ID:          0,
		Title:       "Wells",
		Description: "Wells description",
		Recipient:   target.Hex(),
		Goal:        "100.0",
		Progress:    "2.5",
		Status:      "Ongoing",
		Created:     "3/5/2024, 2:07:09 PM",
		Creator:     admin.Hex(),
	}, f.rec.Details[0])
	assert.False(t, f.rec.Regions[ui.RegionCancelButton].Visible())
	assert.False(t, f.rec.Regions[ui.RegionReleaseButton].Visible())

	require.Len(t, f.rec.DonorRows, 1)
	assert.Equal(t, []ui.DonorRow{{Address: donorA.Hex(), Amount: "2.5 ETH", Date: "N/A"}}, f.rec.DonorRows[0])
}

func TestLoadCampaignDetailRevealsAdminControls(t *testing.T) {
	f := newFixture(t, ui.RegionCancelButton, ui.RegionReleaseButton)
	f.seed(t, "Wells")
	_, err := f.ledger.Bind(admin).CancelCampaign(context.Background(), big.NewInt(0))
	require.NoError(t, err)
	require.NoError(t, f.store.SetAddress(admin.Hex()))
	require.NoError(t, f.store.SetSelectedCampaign(0))

	require.NoError(t, f.views.LoadCampaignDetail(context.Background()))

	assert.Equal(t, "Completed", f.rec.Details[0].Status)
	assert.True(t, f.rec.Regions[ui.RegionCancelButton].Visible())
	assert.True(t, f.rec.Regions[ui.RegionReleaseButton].Visible())
}

func TestLoadCampaignDetailWithoutSelection(t *testing.T) {
	f := newFixture(t)
	require.Error(t, f.views.LoadCampaignDetail(context.Background()))

	assert.Equal(t, []string{"No campaign selected."}, f.rec.Alerts)
	assert.Equal(t, []ui.Page{ui.PageCampaigns}, f.rec.Navigations)
	assert.Zero(t, f.ledger.Calls())
}

func TestFetchDonorHistory(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Wells", "School")
	f.ledger.Fund(donorA, eth("10"))
	f.ledger.Fund(donorB, eth("10"))
	ctx := context.Background()
	for _, d := range []struct {
		from   common.Address
		amount string
	}{{donorB, "1"}, {donorA, "0.5"}, {donorB, "2"}} {
		_, err := f.ledger.Bind(d.from).Donate(ctx, big.NewInt(0), eth(d.amount))
		require.NoError(t, err)
	}

	require.NoError(t, f.views.FetchDonorHistory(ctx, 0))
	require.NoError(t, f.views.FetchDonorHistory(ctx, 1))

	require.Len(t, f.rec.DonorRows, 2)
	assert.Equal(t, []ui.DonorRow{
		{Address: donorB.Hex(), Amount: "3.0 ETH", Date: "N/A"},
		{Address: donorA.Hex(), Amount: "0.5 ETH", Date: "N/A"},
	}, f.rec.DonorRows[0])
	assert.Equal(t, []ui.DonorRow{{Address: "No donations yet."}}, f.rec.DonorRows[1])
}

func TestFetchDonorHistoryFailure(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Wells")
	f.ledger.ReadErr = errors.New("timeout")

	require.Error(t, f.views.FetchDonorHistory(context.Background(), 0))
	assert.Equal(t, "Failed to load donor history. Please try again later.", f.rec.LastAlert())
	assert.Empty(t, f.rec.DonorRows)
}

func TestLoadLanding(t *testing.T) {
	f := newFixture(t, ui.RegionAdminSection)
	f.ledger.Fund(admin, eth("1.5"))
	require.NoError(t, f.store.SetAddress(admin.Hex()))

	require.NoError(t, f.views.LoadLanding(context.Background()))

	assert.Equal(t, []ui.Account{{Address: admin.Hex(), Balance: "1.5", USD: "3000.00"}}, f.rec.Accounts)
	assert.True(t, f.rec.Regions[ui.RegionAdminSection].Visible())
}

func TestLoadLandingWithoutSession(t *testing.T) {
	f := newFixture(t, ui.RegionAdminSection)
	require.Error(t, f.views.LoadLanding(context.Background()))

	assert.Equal(t, []string{"User not logged in."}, f.rec.Alerts)
	assert.Equal(t, []ui.Page{ui.PageEntry}, f.rec.Navigations)
	assert.Empty(t, f.rec.Accounts)
}
