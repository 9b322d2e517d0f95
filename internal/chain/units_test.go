// Copyright (c) 2025 Charity
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), weiPerEther)
}

func TestParseEther(t *testing.T) {
	tests := []struct {
		in      string
		want    *big.Int
		wantErr bool
	}{
		{in: "100", want: ether(100)},
		{in: " 50 ", want: ether(50)},
		{in: "0.1", want: big.NewInt(100_000_000_000_000_000)},
		{in: "1e3", want: ether(1000)},
		{in: "0.000000000000000001", want: big.NewInt(1)},
		{in: "0", want: big.NewInt(0)},
		{in: "0.0000000000000000001", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "1/2", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "0x10", wantErr: true},
		{in: "0b1", wantErr: true},
		{in: "0o7", wantErr: true},
		{in: "1_0", wantErr: true},
		{in: "1e", wantErr: true},
		{in: ".", wantErr: true},
		{in: "1e99999", wantErr: true},
		{in: ".5", want: big.NewInt(500_000_000_000_000_000)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEther(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, tt.want.Cmp(got), "got %s", got)
		})
	}
}

func TestParsePositiveEtherRejectsZero(t *testing.T) {
	_, err := ParsePositiveEther("0")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	got, err := ParsePositiveEther("2.5")
	require.NoError(t, err)
	assert.Equal(t, "2.5", FormatEther(got))
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "50.0", FormatEther(ether(50)))
	assert.Equal(t, "0.0", FormatEther(new(big.Int)))
	assert.Equal(t, "0.0", FormatEther(nil))
	assert.Equal(t, "0.000000000000000001", FormatEther(big.NewInt(1)))
	assert.Equal(t, "1.25", FormatEther(big.NewInt(1_250_000_000_000_000_000)))
	assert.Equal(t, "-2.0", FormatEther(ether(-2)))
}

func TestUSDEstimate(t *testing.T) {
	assert.Equal(t, "3000.00", USDEstimate(big.NewInt(1_500_000_000_000_000_000), 2000))
	assert.Equal(t, "0.00", USDEstimate(nil, 2000))
	assert.Equal(t, "0.01", USDEstimate(big.NewInt(5_000_000_000_000), 2000))
}

func TestIsAddress(t *testing.T) {
	assert.True(t, IsAddress("0x6263CD997403dBCC6A457b9594601947eb3F6Acd"))
	assert.True(t, IsAddress("0x6263cd997403dbcc6a457b9594601947eb3f6acd"))
	assert.True(t, IsAddress("6263cd997403dbcc6a457b9594601947eb3f6acd"))
	assert.False(t, IsAddress("0x6263Cd997403dBCC6A457b9594601947eb3F6Acd"), "bad checksum")
	assert.False(t, IsAddress("0x1234"))
	assert.False(t, IsAddress(""))
	assert.False(t, IsAddress("not an address"))
}
