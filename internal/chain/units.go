// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chain

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

var weiPerEther = big.NewInt(params.Ether)

// decimalPattern admits plain decimals with an optional exponent. It keeps out
// the base prefixes and digit separators big.Rat would otherwise accept.
var decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]{1,3})?$`)

// ErrInvalidAmount is returned for amounts that are not positive decimals.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseEther converts a decimal ether amount ("1.5", "0.01", "2e3") to wei.
// Amounts with more than 18 fractional digits, negative values and anything
// that is not written in base ten are rejected.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if r.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	r.Mul(r, new(big.Rat).SetInt(weiPerEther))
	if !r.IsInt() {
		return nil, fmt.Errorf("%w: %q has more than 18 decimals", ErrInvalidAmount, s)
	}
	return new(big.Int).Set(r.Num()), nil
}

// ParsePositiveEther is ParseEther restricted to amounts greater than zero.
func ParsePositiveEther(s string) (*big.Int, error) {
	wei, err := ParseEther(s)
	if err != nil {
		return nil, err
	}
	if wei.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %q is not positive", ErrInvalidAmount, s)
	}
	return wei, nil
}

// FormatEther renders wei as a decimal ether string with at least one
// fractional digit, e.g. 50 ether -> "50.0", 1 wei -> "0.000000000000000001".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}
	abs := new(big.Int).Abs(wei)
	q, r := new(big.Int).QuoRem(abs, weiPerEther, new(big.Int))
	frac := strings.TrimRight(fmt.Sprintf("%018s", r.String()), "0")
	if frac == "" {
		frac = "0"
	}
	sign := ""
	if wei.Sign() < 0 {
		sign = "-"
	}
	return sign + q.String() + "." + frac
}

// USDEstimate converts wei to a USD amount with two decimals at the given rate.
func USDEstimate(wei *big.Int, rate float64) string {
	if wei == nil {
		wei = new(big.Int)
	}
	eth := new(big.Rat).SetFrac(wei, weiPerEther)
	r := new(big.Rat)
	if r.SetFloat64(rate) == nil {
		r.SetInt64(0)
	}
	return eth.Mul(eth, r).FloatString(2)
}

// IsAddress reports whether s is a 20-byte hex address. Mixed-case input must
// carry a valid EIP-55 checksum.
func IsAddress(s string) bool {
	if !common.IsHexAddress(s) {
		return false
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if hex == strings.ToLower(hex) || hex == strings.ToUpper(hex) {
		return true
	}
	return common.HexToAddress(s).Hex() == "0x"+hex
}
