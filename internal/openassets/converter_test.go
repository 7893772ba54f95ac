package openassets

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vultisig/openassets/internal/network"
	"github.com/vultisig/openassets/internal/openassets/address"
)

type recordedMetrics struct {
	calls []string
}

func (m *recordedMetrics) RecordConversion(direction, result string) {
	m.calls = append(m.calls, direction+"/"+result)
}

func newTestConverter(t *testing.T, net network.Network) (*Converter, *recordedMetrics, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	m := &recordedMetrics{}
	c, err := NewConverter(net, logger, m)
	require.NoError(t, err)
	return c, m, hook
}

func TestConverter_ToAsset(t *testing.T) {
	tests := []struct {
		name  string
		net   network.Network
		base  string
		asset string
	}{
		{name: "mainnet", net: network.MainNet, base: "1F2AQr6oqNtcJQ6p9SiCLQTrHuM9en44H8", asset: "akQz3f1v9JrnJAeGBC4pNzGNRdWXKan4U6E"},
		{name: "testnet", net: network.TestNet, base: "mkgW6hNYBctmqDtTTsTJrsf2Gh2NPtoCU4", asset: "bWvePLsBsf6nThU3pWVZVWjZbcJCYQxHCpE"},
		{name: "mainnet p2sh", net: network.MainNet, base: "3FiBLPbFPHCzPZoFGYNnm2pnSRdsEjfYsJ", asset: "akQz3f1v9JrnJAeGBC4pNzGNRdWXKan4U6E"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m, hook := newTestConverter(t, tt.net)

			conv, err := c.ToAsset(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.asset, conv.Asset.String())
			assert.Equal(t, tt.base, conv.Base.EncodeAddress())
			assert.Equal(t, tt.net, conv.Network)
			assert.Equal(t, []string{DirectionToAsset + "/" + ResultOK}, m.calls)
			assert.Empty(t, hook.AllEntries())
		})
	}
}

func TestConverter_ToAssetRejects(t *testing.T) {
	tests := []struct {
		name   string
		net    network.Network
		input  string
		result string
		target error
	}{
		{name: "segwit", net: network.MainNet, input: "bc1qvzvkjn4q3nszqxrv3nraga2r822xjty3ykvkuw", result: ResultUnsupportedPayload, target: address.ErrUnsupportedPayload},
		{name: "testnet address on mainnet", net: network.MainNet, input: "mkgW6hNYBctmqDtTTsTJrsf2Gh2NPtoCU4", result: ResultMalformed, target: address.ErrMalformedAddress},
		{name: "garbage", net: network.MainNet, input: "hello", result: ResultMalformed, target: address.ErrMalformedAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m, hook := newTestConverter(t, tt.net)

			_, err := c.ToAsset(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Equal(t, tt.result, Classify(err))
			assert.Equal(t, []string{DirectionToAsset + "/" + tt.result}, m.calls)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, logrus.DebugLevel, entry.Level)
			assert.Equal(t, tt.input, entry.Data["input"])
			assert.Equal(t, tt.result, entry.Data["result"])
		})
	}
}

func TestConverter_ForeignSegwit(t *testing.T) {
	c, _, _ := newTestConverter(t, network.TestNet)

	_, err := c.ToAsset("bc1qvzvkjn4q3nszqxrv3nraga2r822xjty3ykvkuw")
	require.Error(t, err)
	assert.True(t, errors.Is(err, address.ErrNetworkMismatch), "got %v", err)
	assert.Equal(t, ResultNetworkMismatch, Classify(err))
}

func TestConverter_ToBase(t *testing.T) {
	c, m, _ := newTestConverter(t, network.MainNet)

	conv, err := c.ToBase("akQz3f1v9JrnJAeGBC4pNzGNRdWXKan4U6E", address.KindPubKeyHash)
	require.NoError(t, err)
	assert.Equal(t, "1F2AQr6oqNtcJQ6p9SiCLQTrHuM9en44H8", conv.Base.EncodeAddress())

	conv, err = c.ToBase("akQz3f1v9JrnJAeGBC4pNzGNRdWXKan4U6E", address.KindScriptHash)
	require.NoError(t, err)
	assert.Equal(t, "3FiBLPbFPHCzPZoFGYNnm2pnSRdsEjfYsJ", conv.Base.EncodeAddress())
	assert.Equal(t, address.KindScriptHash, conv.Kind)

	_, err = c.ToBase("bWvePLsBsf6nThU3pWVZVWjZbcJCYQxHCpE", address.KindPubKeyHash)
	assert.True(t, errors.Is(err, address.ErrMalformedAddress))

	assert.Equal(t, []string{
		DirectionToBase + "/" + ResultOK,
		DirectionToBase + "/" + ResultOK,
		DirectionToBase + "/" + ResultMalformed,
	}, m.calls)
}

func TestConverter_RegTestRoundTrip(t *testing.T) {
	c, _, _ := newTestConverter(t, network.RegTest)

	toAsset, err := c.ToAsset("mkgW6hNYBctmqDtTTsTJrsf2Gh2NPtoCU4")
	require.NoError(t, err)
	assert.Equal(t, network.RegTest, toAsset.Asset.Network())

	toBase, err := c.ToBase(toAsset.Asset.String(), toAsset.Kind)
	require.NoError(t, err)
	assert.Equal(t, toAsset.Asset, toBase.Asset)
	assert.Equal(t, "mkgW6hNYBctmqDtTTsTJrsf2Gh2NPtoCU4", toBase.Base.EncodeAddress())
}

func TestNewConverter(t *testing.T) {
	_, err := NewConverter(network.Network(0), nil, nil)
	assert.True(t, errors.Is(err, network.ErrUnsupportedNetwork))

	c, err := NewConverter(network.SigNet, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, network.SigNet, c.Network())

	_, err = c.ToAsset("hello")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ResultOK, Classify(nil))
	assert.Equal(t, ResultError, Classify(errors.New("boom")))
	assert.Equal(t, ResultUnsupportedPayload, Classify(errors.Wrap(address.ErrUnsupportedPayload, "x")))
}
