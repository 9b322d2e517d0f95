// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package views loads contract state and renders it: the campaign list, one
// campaign's detail with its donor history, and the account landing summary.
package views

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"charity/cli/internal/admingate"
	"charity/cli/internal/chain"
	"charity/cli/internal/config"
	"charity/cli/internal/errors"
	"charity/cli/internal/gateway"
	"charity/cli/internal/logging"
	"charity/cli/internal/session"
	"charity/cli/internal/ui"
)

const (
	msgNoCampaign     = "No campaign selected."
	msgNotLoggedIn    = "User not logged in."
	msgDonorsFailed   = "Failed to load donor history. Please try again later."
	msgNoDonations    = "No donations yet."
	statusCompleted   = "Completed"
	statusOngoing     = "Ongoing"
	donationDateUnset = "N/A"

	// DateLayout renders creation times in the user's locale style.
	DateLayout = "1/2/2006, 3:04:05 PM"
)

// Deps are the capabilities the views use.
type Deps struct {
	Contracts gateway.Initializer
	Session   *session.Store
	Notifier  ui.Notifier
	Navigator ui.Navigator
	Surface   ui.Surface
	Gate      *admingate.Gate
	Log       *slog.Logger
}

type Views struct {
	Deps
	usdRate  float64
	location *time.Location
}

// New returns the views. A non-positive usdRate uses the default rate.
func New(d Deps, usdRate float64) *Views {
	if d.Log == nil {
		d.Log = logging.Discard()
	}
	if usdRate <= 0 {
		usdRate = config.DefaultUSDRate
	}
	return &Views{Deps: d, usdRate: usdRate, location: time.Local}
}

// SetLocation changes the zone creation times are shown in.
func (v *Views) SetLocation(loc *time.Location) { v.location = loc }

// LoadCampaignList renders one card per campaign in id order. On any read
// failure nothing is rendered.
func (v *Views) LoadCampaignList(ctx context.Context) error {
	cards, err := v.campaignCards(ctx)
	if err != nil {
		v.Log.Error("loading campaigns failed", "error", err, "category", logging.ClassifyRPCError(err).String())
		return errors.Wrap(errors.RemoteRead, "load campaigns", err)
	}
	v.Surface.RenderCampaignCards(cards)
	return nil
}

func (v *Views) campaignCards(ctx context.Context) ([]ui.CampaignCard, error) {
	c, err := v.Contracts.EnsureInitialized(ctx)
	if err != nil {
		return nil, err
	}
	count, err := c.GetCampaignCount(ctx)
	if err != nil {
		return nil, err
	}
	if !count.IsUint64() {
		return nil, fmt.Errorf("campaign count %s out of range", count)
	}
	n := count.Uint64()
	cards := make([]ui.CampaignCard, 0, n)
	for i := uint64(0); i < n; i++ {
		campaign, err := c.GetCampaign(ctx, new(big.Int).SetUint64(i))
		if err != nil {
			return nil, fmt.Errorf("campaign %d: %w", i, err)
		}
		cards = append(cards, ui.CampaignCard{ID: i, Title: campaign.Title, Goal: chain.FormatEther(campaign.Goal)})
	}
	return cards, nil
}

// View selects a campaign and opens its detail page.
func (v *Views) View(ctx context.Context, id uint64) error {
	if err := v.Session.SetSelectedCampaign(id); err != nil {
		v.Log.Error("saving selected campaign failed", "error", err)
		return err
	}
	v.Navigator.Navigate(ctx, ui.PageCampaign)
	return nil
}

// LoadCampaignDetail renders the selected campaign, reveals the admin
// controls to admins and loads the donor history.
func (v *Views) LoadCampaignDetail(ctx context.Context) error {
	id, ok := v.Session.SelectedCampaign()
	if !ok {
		v.Notifier.Alert(msgNoCampaign)
		v.Navigator.Navigate(ctx, ui.PageCampaigns)
		return errors.New(errors.SessionMissing, msgNoCampaign)
	}
	c, err := v.Contracts.EnsureInitialized(ctx)
	if err != nil {
		v.Log.Error("loading campaign details failed", "error", err)
		return errors.Wrap(errors.RemoteRead, "load campaign", err)
	}
	campaign, err := c.GetCampaign(ctx, new(big.Int).SetUint64(id))
	if err != nil {
		v.Log.Error("loading campaign details failed", "id", id, "error", err, "category", logging.ClassifyRPCError(err).String())
		return errors.Wrap(errors.RemoteRead, "load campaign", err)
	}
	v.Surface.RenderCampaignDetail(v.detail(id, campaign))

	if v.Gate != nil && v.Gate.CheckAdminStatus(ctx) {
		v.show(ui.RegionCancelButton)
		v.show(ui.RegionReleaseButton)
	}
	return v.FetchDonorHistory(ctx, id)
}

func (v *Views) show(region string) {
	if r, ok := v.Surface.Region(region); ok {
		r.SetVisible(true)
	}
}

func (v *Views) detail(id uint64, c chain.Campaign) ui.CampaignDetail {
	status := statusOngoing
	if c.IsCompleted {
		status = statusCompleted
	}
	var created string
	if c.CreationTime != nil {
		created = time.Unix(c.CreationTime.Int64(), 0).In(v.location).Format(DateLayout)
	}
	return ui.CampaignDetail{
		ID:          id,
		Title:       c.Title,
		Description: c.Description,
		Recipient:   c.Recipient.Hex(),
		Goal:        chain.FormatEther(c.Goal),
		Progress:    chain.FormatEther(c.TotalDonated),
		Status:      status,
		Created:     created,
		Creator:     c.Creator.Hex(),
	}
}

// FetchDonorHistory renders one row per donor in the contract's order, or a
// single placeholder row when there are none.
func (v *Views) FetchDonorHistory(ctx context.Context, id uint64) error {
	rows, err := v.donorRows(ctx, id)
	if err != nil {
		v.Log.Error("fetching donor history failed", "id", id, "error", err, "category", logging.ClassifyRPCError(err).String())
		v.Notifier.Alert(msgDonorsFailed)
		return errors.Wrap(errors.RemoteRead, "fetch donor history", err)
	}
	v.Surface.RenderDonorRows(rows)
	return nil
}

func (v *Views) donorRows(ctx context.Context, id uint64) ([]ui.DonorRow, error) {
	c, err := v.Contracts.EnsureInitialized(ctx)
	if err != nil {
		return nil, err
	}
	cid := new(big.Int).SetUint64(id)
	donors, err := c.GetDonors(ctx, cid)
	if err != nil {
		return nil, err
	}
	if len(donors) == 0 {
		return []ui.DonorRow{{Address: msgNoDonations}}, nil
	}
	rows := make([]ui.DonorRow, 0, len(donors))
	for _, donor := range donors {
		amount, err := c.GetDonationAmountByDonor(ctx, cid, donor)
		if err != nil {
			return nil, fmt.Errorf("donation of %s: %w", donor.Hex(), err)
		}
		rows = append(rows, ui.DonorRow{
			Address: donor.Hex(),
			Amount:  chain.FormatEther(amount) + " ETH",
			Date:    donationDateUnset,
		})
	}
	return rows, nil
}

// LoadLanding renders the connected account's balance and its USD estimate,
// then toggles the admin section.
func (v *Views) LoadLanding(ctx context.Context) error {
	addr, ok := v.Session.Address()
	if !ok {
		v.Notifier.Alert(msgNotLoggedIn)
		v.Navigator.Navigate(ctx, ui.PageEntry)
		return errors.New(errors.SessionMissing, msgNotLoggedIn)
	}
	c, err := v.Contracts.EnsureInitialized(ctx)
	if err != nil {
		v.Log.Error("loading account failed", "error", err)
		return errors.Wrap(errors.RemoteRead, "load account", err)
	}
	balance, err := c.BalanceAt(ctx, common.HexToAddress(addr))
	if err != nil {
		v.Log.Error("reading balance failed", "address", addr, "error", err, "category", logging.ClassifyRPCError(err).String())
		return errors.Wrap(errors.RemoteRead, "read balance", err)
	}
	v.Surface.RenderAccount(ui.Account{
		Address: addr,
		Balance: chain.FormatEther(balance),
		USD:     chain.USDEstimate(balance, v.usdRate),
	})
	if v.Gate != nil {
		v.Gate.ToggleAdminSection(ctx)
	}
	return nil
}
