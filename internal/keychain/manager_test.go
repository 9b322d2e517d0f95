// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletKeyRoundTrip(t *testing.T) {
	m := NewManagerWithRing(keyring.NewArrayKeyring(nil))

	_, err := m.LoadWalletKey()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.SaveWalletKey("abc123"))
	got, err := m.LoadWalletKey()
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)

	require.NoError(t, m.ClearWalletKey())
	_, err = m.LoadWalletKey()
	assert.ErrorIs(t, err, ErrNotFound)

	// clearing twice is fine
	require.NoError(t, m.ClearWalletKey())
}

func TestEmptyKeyIsNotFound(t *testing.T) {
	ring := keyring.NewArrayKeyring([]keyring.Item{{Key: KeyWalletKey, Data: nil}})
	m := NewManagerWithRing(ring)

	_, err := m.LoadWalletKey()
	assert.ErrorIs(t, err, ErrNotFound)
}
