// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoticePrefersWrappedMessage(t *testing.T) {
	cause := stderrors.New("execution reverted: Only admin")
	e := Wrap(RemoteRejected, "cancel campaign", cause)

	assert.Equal(t, "execution reverted: Only admin", e.Notice())
	assert.Equal(t, "remote_rejected: cancel campaign: execution reverted: Only admin", e.Error())
	assert.ErrorIs(t, e, cause)
}

func TestNoticeFallsBackToMessage(t *testing.T) {
	e := New(Validation, "Please enter a valid donation amount.")
	assert.Equal(t, "Please enter a valid donation amount.", e.Notice())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(SessionMissing, "User not logged in."))
	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, SessionMissing, kind)

	_, ok = KindOf(stderrors.New("plain"))
	assert.False(t, ok)
}
