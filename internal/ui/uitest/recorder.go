// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package uitest provides recording implementations of the ui capabilities.
package uitest

import (
	"context"
	"sync"

	"charity/cli/internal/ui"
)

// Recorder captures alerts, navigations and renders.
type Recorder struct {
	mu          sync.Mutex
	Alerts      []string
	Navigations []ui.Page
	Cards       [][]ui.CampaignCard
	Details     []ui.CampaignDetail
	DonorRows   [][]ui.DonorRow
	Accounts    []ui.Account
	Regions     map[string]*FakeRegion
}

// NewRecorder returns a recorder whose page has the given regions, all hidden.
func NewRecorder(regions ...string) *Recorder {
	r := &Recorder{Regions: make(map[string]*FakeRegion)}
	for _, id := range regions {
		r.Regions[id] = &FakeRegion{}
	}
	return r
}

func (r *Recorder) Alert(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Alerts = append(r.Alerts, msg)
}

func (r *Recorder) Navigate(_ context.Context, page ui.Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Navigations = append(r.Navigations, page)
}

func (r *Recorder) RenderCampaignCards(cards []ui.CampaignCard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cards = append(r.Cards, cards)
}

func (r *Recorder) RenderCampaignDetail(detail ui.CampaignDetail) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Details = append(r.Details, detail)
}

func (r *Recorder) RenderDonorRows(rows []ui.DonorRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.DonorRows = append(r.DonorRows, rows)
}

func (r *Recorder) RenderAccount(account ui.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Accounts = append(r.Accounts, account)
}

func (r *Recorder) Region(id string) (ui.Region, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.Regions[id]
	if !ok {
		return nil, false
	}
	return reg, true
}

// LastAlert returns the most recent alert or "".
func (r *Recorder) LastAlert() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Alerts) == 0 {
		return ""
	}
	return r.Alerts[len(r.Alerts)-1]
}

// AllAlerts returns a copy of the alerts seen so far.
func (r *Recorder) AllAlerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Alerts...)
}

// FakeRegion remembers its visibility.
type FakeRegion struct {
	mu      sync.Mutex
	visible bool
	toggled int
}

func (f *FakeRegion) SetVisible(visible bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible = visible
	f.toggled++
}

func (f *FakeRegion) Visible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

// Toggled reports how many times SetVisible was called.
func (f *FakeRegion) Toggled() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.toggled
}
