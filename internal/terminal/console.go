// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/pterm/pterm"

	"charity/cli/internal/ui"
)

// Hints shown when an admin-only region becomes visible.
var regionHints = map[string]string{
	ui.RegionAdminSection:  "Admin tools: charity admin add <address> | charity admin remove <address>",
	ui.RegionCancelButton:  "Admin: cancel this campaign with 'charity cancel'",
	ui.RegionReleaseButton: "Admin: release the donated funds with 'charity release'",
}

// Console renders notices and view models to a terminal. It is safe for
// concurrent use; event notices may arrive while a view is printing.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	regions map[string]*region
}

// NewConsole writes to out. regions lists the toggleable areas of the page
// being shown; other region lookups report absence.
func NewConsole(out io.Writer, regions ...string) *Console {
	c := &Console{out: out}
	c.Enter(regions...)
	return c
}

// Enter switches to a new page with the given regions, all hidden.
func (c *Console) Enter(regions ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regions = make(map[string]*region, len(regions))
	for _, id := range regions {
		c.regions[id] = &region{console: c, hint: regionHints[id]}
	}
}

func (c *Console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}

// Alert prints a notice line.
func (c *Console) Alert(msg string) {
	c.println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("» ") + msg)
}

func (c *Console) RenderCampaignCards(cards []ui.CampaignCard) {
	if len(cards) == 0 {
		return
	}
	data := pterm.TableData{{"ID", "Title", "Goal (ETH)"}}
	for _, card := range cards {
		data = append(data, []string{fmt.Sprint(card.ID), card.Title, card.Goal})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return
	}
	c.println(table)
	c.println(pterm.NewStyle(pterm.FgGray).Sprint("View details with: charity campaigns view <id>"))
}

func (c *Console) RenderCampaignDetail(d ui.CampaignDetail) {
	body := fmt.Sprintf(
		"%s\n\nRecipient:  %s\nGoal:       %s ETH\nProgress:   %s ETH\nStatus:     %s\nCreated:    %s\nCreator:    %s",
		d.Description, d.Recipient, d.Goal, d.Progress, d.Status, d.Created, d.Creator)
	c.println(pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprintf("#%d %s", d.ID, d.Title)).
		WithPadding(1).
		Sprint(body))
}

func (c *Console) RenderDonorRows(rows []ui.DonorRow) {
	c.println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Donor history"))
	if len(rows) == 1 && rows[0].Amount == "" {
		c.println(rows[0].Address)
		return
	}
	data := pterm.TableData{{"Donor", "Amount", "Date"}}
	for _, r := range rows {
		data = append(data, []string{r.Address, r.Amount, r.Date})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return
	}
	c.println(table)
}

func (c *Console) RenderAccount(a ui.Account) {
	body := fmt.Sprintf("Address:  %s\nBalance:  %s ETH\nEstimate: %s USD", a.Address, a.Balance, a.USD)
	c.println(pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Account")).
		WithPadding(1).
		Sprint(body))
}

func (c *Console) Region(id string) (ui.Region, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.regions[id]
	if !ok {
		return nil, false
	}
	return r, true
}

// Visible reports whether the named region was last made visible.
func (c *Console) Visible(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.regions[id]
	return ok && r.visible
}

type region struct {
	console *Console
	hint    string
	visible bool
}

// SetVisible prints the region's hint the first time it is shown.
func (r *region) SetVisible(visible bool) {
	r.console.mu.Lock()
	show := visible && !r.visible && r.hint != ""
	r.visible = visible
	r.console.mu.Unlock()
	if show {
		r.console.println(pterm.NewStyle(pterm.FgYellow).Sprint(r.hint))
	}
}
