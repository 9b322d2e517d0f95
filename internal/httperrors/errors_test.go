// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Cause
	}{
		{"deadline", context.DeadlineExceeded, CauseTimeout},
		{"dns", &net.DNSError{Err: "no such host", Name: "mainnet.example"}, CauseDNS},
		{"refused", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}, CauseRefused},
		{"refused text", errors.New("dial tcp 127.0.0.1:8545: connect: connection refused"), CauseRefused},
		{"tls", errors.New("x509: certificate signed by unknown authority"), CauseTLS},
		{"server", errors.New("502 Bad Gateway: upstream"), CauseServer},
		{"other", errors.New("execution reverted"), CauseUnknown},
		{"nil", nil, CauseUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestFormatNetworkError(t *testing.T) {
	var buf bytes.Buffer
	cause := fmt.Errorf("dial: %w", &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED})

	err := FormatNetworkError(&buf, cause, "loading campaigns", "http://127.0.0.1:8545")

	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.ECONNREFUSED)
	assert.Contains(t, buf.String(), "Connection refused")
	assert.Contains(t, buf.String(), "loading campaigns")
	assert.Contains(t, buf.String(), "127.0.0.1:8545")
	assert.NoError(t, FormatNetworkError(&buf, nil, "x", ""))
}

func TestIsNetworkError(t *testing.T) {
	assert.True(t, IsNetworkError(errors.New("connection refused")))
	assert.False(t, IsNetworkError(errors.New("execution reverted: Only admin can perform this action")))
}

func TestExtractHostFromURL(t *testing.T) {
	assert.Equal(t, "sepolia.infura.io", ExtractHostFromURL("https://sepolia.infura.io/v3/abc"))
	assert.Equal(t, "node", ExtractHostFromURL("not a url"))
}
