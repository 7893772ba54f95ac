package address

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/pkg/errors"

	"github.com/vultisig/openassets/internal/network"
)

var ErrNetworkMismatch = errors.New("address is not for network")

// unsupported stands in for base address types with no hash payload, such as bare pubkeys.
type unsupported struct {
	reason string
}

func (unsupported) isPayload() {}

// PayloadOf extracts the payload committed to by a btcd address.
func PayloadOf(addr btcutil.Address) Payload {
	switch a := addr.(type) {
	case *btcutil.AddressPubKeyHash:
		return PubKeyHash(*a.Hash160())
	case *btcutil.AddressScriptHash:
		return ScriptHash(*a.Hash160())
	case *btcutil.AddressWitnessPubKeyHash:
		return WitnessProgram{Version: a.WitnessVersion(), Program: a.WitnessProgram()}
	case *btcutil.AddressWitnessScriptHash:
		return WitnessProgram{Version: a.WitnessVersion(), Program: a.WitnessProgram()}
	case *btcutil.AddressTaproot:
		return WitnessProgram{Version: a.WitnessVersion(), Program: a.WitnessProgram()}
	case *btcutil.AddressPubKey:
		return unsupported{reason: "bare public key has no hash payload"}
	default:
		return unsupported{reason: "address type has no hash payload"}
	}
}

// FromBaseAddress converts a Bitcoin address to its asset address. Segwit and taproot
// addresses fail with ErrUnsupportedPayload.
func FromBaseAddress(addr btcutil.Address) (AssetAddress, error) {
	if addr == nil {
		return AssetAddress{}, errors.Wrap(ErrUnsupportedPayload, "nil address")
	}
	payload := PayloadOf(addr)
	if _, ok := payload.(WitnessProgram); ok {
		return AssetAddress{}, errors.Wrapf(ErrUnsupportedPayload, "%s", addr.EncodeAddress())
	}
	net, err := network.Resolve(addr)
	if err != nil {
		return AssetAddress{}, err
	}
	return New(payload, net)
}

// FromBaseAddressOnNet is FromBaseAddress with the network given by the caller.
func FromBaseAddressOnNet(addr btcutil.Address, net network.Network) (AssetAddress, error) {
	if addr == nil {
		return AssetAddress{}, errors.Wrap(ErrUnsupportedPayload, "nil address")
	}
	params := net.Params()
	if params == nil {
		return AssetAddress{}, errors.Wrapf(network.ErrUnsupportedNetwork, "%s", net)
	}
	if !addr.IsForNet(params) {
		return AssetAddress{}, errors.Wrapf(ErrNetworkMismatch, "%s on %s", addr.EncodeAddress(), net)
	}
	return New(PayloadOf(addr), net)
}

// ParseBaseAddress decodes a Bitcoin address and checks it belongs to net.
func ParseBaseAddress(s string, net network.Network) (btcutil.Address, error) {
	params := net.Params()
	if params == nil {
		return nil, errors.Wrapf(network.ErrUnsupportedNetwork, "%s", net)
	}
	addr, err := btcutil.DecodeAddress(s, params)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedAddress, "failed to decode base address %q: %v", s, err)
	}
	if !addr.IsForNet(params) {
		return nil, errors.Wrapf(ErrNetworkMismatch, "%s on %s", s, net)
	}
	return addr, nil
}
