// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"context"
	"errors"
	"strings"
)

// RPCErrorType represents the category of a JSON-RPC / contract call error.
type RPCErrorType int

const (
	RPCErrorUnknown RPCErrorType = iota
	RPCErrorNetwork
	RPCErrorTimeout
	RPCErrorReverted
	RPCErrorInsufficientFunds
	RPCErrorNonce
	RPCErrorNoSigner
)

func (t RPCErrorType) String() string {
	switch t {
	case RPCErrorNetwork:
		return "network"
	case RPCErrorTimeout:
		return "timeout"
	case RPCErrorReverted:
		return "reverted"
	case RPCErrorInsufficientFunds:
		return "insufficient_funds"
	case RPCErrorNonce:
		return "nonce"
	case RPCErrorNoSigner:
		return "no_signer"
	}
	return "unknown"
}

// ClassifyRPCError categorizes an error returned by the node or the contract binding.
func ClassifyRPCError(err error) RPCErrorType {
	if err == nil {
		return RPCErrorUnknown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return RPCErrorTimeout
	}
	lower := strings.ToLower(err.Error())

	switch {
	case strings.Contains(lower, "execution reverted") || strings.Contains(lower, "reverted"):
		return RPCErrorReverted
	case strings.Contains(lower, "insufficient funds"):
		return RPCErrorInsufficientFunds
	case strings.Contains(lower, "nonce too low") || strings.Contains(lower, "nonce too high") ||
		strings.Contains(lower, "replacement transaction underpriced"):
		return RPCErrorNonce
	case strings.Contains(lower, "signer available") || strings.Contains(lower, "not managed by this wallet"):
		return RPCErrorNoSigner
	case strings.Contains(lower, "deadline") || strings.Contains(lower, "timeout"):
		return RPCErrorTimeout
	case strings.Contains(lower, "connection refused") || strings.Contains(lower, "connection reset") ||
		strings.Contains(lower, "no such host") || strings.Contains(lower, "eof"):
		return RPCErrorNetwork
	}
	return RPCErrorUnknown
}
