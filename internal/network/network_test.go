package network

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionByte(t *testing.T) {
	tests := []struct {
		net  Network
		want byte
	}{
		{MainNet, 0x00},
		{TestNet, 0x6f},
		{RegTest, 0x6f},
		{SigNet, 0x6f},
	}

	for _, tt := range tests {
		t.Run(tt.net.String(), func(t *testing.T) {
			got, err := tt.net.VersionByte()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			// same as the legacy P2PKH version of the base network
			assert.Equal(t, tt.net.Params().PubKeyHashAddrID, got)
		})
	}

	_, err := Network(0).VersionByte()
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))
}

func TestParse(t *testing.T) {
	for input, want := range map[string]Network{
		"mainnet":   MainNet,
		"MainNet":   MainNet,
		"testnet3":  TestNet,
		" testnet ": TestNet,
		"regtest":   RegTest,
		"signet":    SigNet,
	} {
		got, err := Parse(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := Parse("simnet")
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))
}

func TestString(t *testing.T) {
	for _, n := range All {
		parsed, err := Parse(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
	}
	assert.Equal(t, "network(7)", Network(7).String())
	assert.False(t, Network(7).Valid())
	assert.Nil(t, Network(7).Params())
}

func TestFromParams(t *testing.T) {
	n, err := FromParams(&chaincfg.RegressionNetParams)
	require.NoError(t, err)
	assert.Equal(t, RegTest, n)

	_, err = FromParams(&chaincfg.SimNetParams)
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))

	_, err = FromParams(nil)
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))
}

func TestResolve(t *testing.T) {
	mainAddr, err := btcutil.DecodeAddress("1F2AQr6oqNtcJQ6p9SiCLQTrHuM9en44H8", &chaincfg.MainNetParams)
	require.NoError(t, err)
	n, err := Resolve(mainAddr)
	require.NoError(t, err)
	assert.Equal(t, MainNet, n)

	regtest, err := btcutil.DecodeAddress("mkgW6hNYBctmqDtTTsTJrsf2Gh2NPtoCU4", &chaincfg.RegressionNetParams)
	require.NoError(t, err)
	n, err = Resolve(regtest)
	require.NoError(t, err)
	assert.Equal(t, TestNet, n)

	_, err = Resolve(nil)
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))

	hash := make([]byte, 20)
	sim, err := btcutil.NewAddressPubKeyHash(hash, &chaincfg.SimNetParams)
	require.NoError(t, err)
	_, err = Resolve(sim)
	assert.True(t, errors.Is(err, ErrUnsupportedNetwork))
}
