// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"github.com/pterm/pterm"

	"charity/cli/internal/ui"
)

// pageRegions lists the admin-only regions each page carries.
var pageRegions = map[ui.Page][]string{
	ui.PageLanding:  {ui.RegionAdminSection},
	ui.PageCampaign: {ui.RegionCancelButton, ui.RegionReleaseButton},
}

// router navigates by loading the destination page's view in place.
type router struct {
	app   *app
	depth int
}

func (r *router) Navigate(ctx context.Context, page ui.Page) {
	// A view may redirect; stop runaway redirect chains.
	if r.depth > 4 {
		r.app.log.Warn("too many redirects", "page", string(page))
		return
	}
	r.depth++
	defer func() { r.depth-- }()

	r.app.log.Debug("navigate", "page", string(page))
	r.app.console.Enter(pageRegions[page]...)
	switch page {
	case ui.PageEntry:
		pterm.Println("Run 'charity connect' to connect your wallet.")
	case ui.PageLanding:
		_ = r.app.views.LoadLanding(ctx)
	case ui.PageCampaigns:
		_ = r.app.views.LoadCampaignList(ctx)
	case ui.PageCampaign:
		_ = r.app.views.LoadCampaignDetail(ctx)
	}
}

// show runs a page as the command's own view and reports its outcome.
func (r *router) show(ctx context.Context, page ui.Page) error {
	r.app.console.Enter(pageRegions[page]...)
	var err error
	switch page {
	case ui.PageLanding:
		err = r.app.views.LoadLanding(ctx)
	case ui.PageCampaigns:
		err = r.app.views.LoadCampaignList(ctx)
	case ui.PageCampaign:
		err = r.app.views.LoadCampaignDetail(ctx)
	default:
		r.Navigate(ctx, page)
	}
	return r.app.settle("loading the "+string(page)+" page", err)
}
