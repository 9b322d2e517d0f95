// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package ui declares the narrow capabilities the orchestration code needs from
// its host: showing a notice, moving to another page, rendering view models and
// toggling named regions. The terminal implements them for the CLI; uitest
// records them for tests.
package ui

import "context"

// Page identifies a navigation target.
type Page string

const (
	PageEntry     Page = "index"
	PageLanding   Page = "landing"
	PageCampaigns Page = "campaigns"
	PageCampaign  Page = "campaign"
)

// Region ids for the admin-only controls.
const (
	RegionAdminSection  = "admin-button-section"
	RegionCancelButton  = "cancel-campaign-button"
	RegionReleaseButton = "release-funds-button"
)

// Notifier shows a short blocking-style message to the user.
type Notifier interface {
	Alert(msg string)
}

// Navigator moves the user to another page.
type Navigator interface {
	Navigate(ctx context.Context, page Page)
}

// Region is a toggleable area of the current page.
type Region interface {
	SetVisible(visible bool)
}

// Surface renders view models onto the current page.
type Surface interface {
	RenderCampaignCards(cards []CampaignCard)
	RenderCampaignDetail(detail CampaignDetail)
	RenderDonorRows(rows []DonorRow)
	RenderAccount(account Account)
	// Region returns the named region when the current page has it.
	Region(id string) (Region, bool)
}

// CampaignCard is one entry of the campaign list.
type CampaignCard struct {
	ID    uint64
	Title string
	Goal  string
}

// CampaignDetail is the fully formatted projection of one campaign.
type CampaignDetail struct {
	ID          uint64
	Title       string
	Description string
	Recipient   string
	Goal        string
	Progress    string
	Status      string
	Created     string
	Creator     string
}

// DonorRow is one line of the donor history table. A placeholder row has only
// Address set.
type DonorRow struct {
	Address string
	Amount  string
	Date    string
}

// Account is the landing page summary.
type Account struct {
	Address string
	Balance string
	USD     string
}
