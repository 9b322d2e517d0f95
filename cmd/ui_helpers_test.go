// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestInlineSpinnerDrawsAndClears(t *testing.T) {
	var w syncBuffer
	stop := startInlineSpinner(&w, "mining", []string{"|", "/"}, time.Millisecond)
	assert.Eventually(t, func() bool { return strings.Contains(w.String(), "mining") }, time.Second, time.Millisecond)
	stop()

	out := w.String()
	assert.True(t, strings.HasSuffix(out, "\r"), "line must be cleared on stop")
}

func TestPendingIndicatorDisabledWithoutTerminal(t *testing.T) {
	assert.Nil(t, pendingIndicator(false))
}
