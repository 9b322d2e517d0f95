// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session keeps the connected account and the selected campaign between
// invocations. It is the CLI's counterpart of a browser's local storage: a flat
// string key-value store, persisted immediately on every write.
package session

import (
	"strconv"
	"strings"
)

// Keys under which session values are stored.
const (
	KeyUserAddress        = "userAddress"
	KeySelectedCampaignID = "selectedCampaignId"
)

// KV is the durable key-value capability backing a Store.
type KV interface {
	// Get returns the value and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store reads and writes session values. Read failures are treated as absence.
type Store struct {
	kv KV
}

// NewStore wraps a key-value capability.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// SetAddress records the connected account. No format validation happens here.
func (s *Store) SetAddress(addr string) error {
	return s.kv.Set(KeyUserAddress, addr)
}

// Address returns the connected account, if any.
func (s *Store) Address() (string, bool) {
	v, ok, err := s.kv.Get(KeyUserAddress)
	if err != nil || !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// SetSelectedCampaign records the campaign picked from the list.
func (s *Store) SetSelectedCampaign(id uint64) error {
	return s.kv.Set(KeySelectedCampaignID, strconv.FormatUint(id, 10))
}

// SelectedCampaign returns the selected campaign id. A value that does not
// parse as an unsigned integer reads as unset.
func (s *Store) SelectedCampaign() (uint64, bool) {
	v, ok, err := s.kv.Get(KeySelectedCampaignID)
	if err != nil || !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Clear removes both the connected account and the selected campaign.
func (s *Store) Clear() error {
	if err := s.kv.Delete(KeyUserAddress); err != nil {
		return err
	}
	return s.kv.Delete(KeySelectedCampaignID)
}
