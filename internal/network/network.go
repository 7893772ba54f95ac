package network

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
)

// Network identifies one of the fixed set of Bitcoin networks an address can belong to.
type Network uint8

const (
	MainNet Network = iota + 1
	TestNet
	RegTest
	SigNet
)

var ErrUnsupportedNetwork = errors.New("unsupported network")

// All lists the supported networks in resolution order.
var All = []Network{MainNet, TestNet, RegTest, SigNet}

var params = map[Network]*chaincfg.Params{
	MainNet: &chaincfg.MainNetParams,
	TestNet: &chaincfg.TestNet3Params,
	RegTest: &chaincfg.RegressionNetParams,
	SigNet:  &chaincfg.SigNetParams,
}

// Open Assets reuses the legacy P2PKH version bytes of the base network.
var versionBytes = map[Network]byte{
	MainNet: 0x00,
	TestNet: 0x6f,
	RegTest: 0x6f,
	SigNet:  0x6f,
}

var names = map[Network]string{
	MainNet: "mainnet",
	TestNet: "testnet",
	RegTest: "regtest",
	SigNet:  "signet",
}

func (n Network) String() string {
	if name, ok := names[n]; ok {
		return name
	}
	return fmt.Sprintf("network(%d)", uint8(n))
}

func (n Network) Valid() bool {
	_, ok := params[n]
	return ok
}

// Params returns the btcd parameter set, or nil for an unsupported network.
func (n Network) Params() *chaincfg.Params {
	return params[n]
}

// VersionByte returns the version byte that follows the namespace byte in an asset address.
func (n Network) VersionByte() (byte, error) {
	v, ok := versionBytes[n]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedNetwork, "no version byte for %s", n)
	}
	return v, nil
}

// Parse maps a configuration name to a Network.
func Parse(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mainnet", "main", "bitcoin":
		return MainNet, nil
	case "testnet", "testnet3", "test":
		return TestNet, nil
	case "regtest", "regression":
		return RegTest, nil
	case "signet":
		return SigNet, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedNetwork, "unknown network name %q", name)
	}
}

// FromParams maps a btcd parameter set back to a Network by its magic.
func FromParams(p *chaincfg.Params) (Network, error) {
	if p == nil {
		return 0, errors.Wrap(ErrUnsupportedNetwork, "nil params")
	}
	for _, n := range All {
		if params[n].Net == p.Net {
			return n, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedNetwork, "params %s", p.Name)
}

// Resolve returns the first supported network the address is valid for.
// Legacy testnet, regtest and signet addresses share version bytes and resolve to TestNet.
func Resolve(addr btcutil.Address) (Network, error) {
	if addr == nil {
		return 0, errors.Wrap(ErrUnsupportedNetwork, "nil address")
	}
	for _, n := range All {
		if addr.IsForNet(params[n]) {
			return n, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedNetwork, "address %s", addr.EncodeAddress())
}
