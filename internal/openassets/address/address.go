package address

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"

	"github.com/vultisig/openassets/internal/network"
)

// Namespace is the leading byte of every encoded Open Assets address.
const Namespace byte = 0x13

const encodedLen = 22

var ErrUnsupportedPayload = errors.New("the asset address of the witness program is not defined")

// AssetAddress is an Open Assets address. Values are comparable and can be used as map keys.
// A non-zero value always holds a hash payload on a supported network.
type AssetAddress struct {
	network network.Network
	kind    Kind
	hash    [20]byte
}

// New builds an asset address. Only PubKeyHash and ScriptHash payloads are accepted.
func New(payload Payload, net network.Network) (AssetAddress, error) {
	var a AssetAddress
	switch p := payload.(type) {
	case PubKeyHash:
		a = AssetAddress{kind: KindPubKeyHash, hash: p}
	case ScriptHash:
		a = AssetAddress{kind: KindScriptHash, hash: p}
	case WitnessProgram:
		return AssetAddress{}, errors.WithStack(ErrUnsupportedPayload)
	case unsupported:
		return AssetAddress{}, errors.Wrap(ErrUnsupportedPayload, p.reason)
	case nil:
		return AssetAddress{}, errors.Wrap(ErrUnsupportedPayload, "missing payload")
	default:
		return AssetAddress{}, errors.Wrap(ErrUnsupportedPayload, "unknown payload variant")
	}
	if !net.Valid() {
		return AssetAddress{}, errors.Wrapf(network.ErrUnsupportedNetwork, "%s", net)
	}
	a.network = net
	return a, nil
}

func (a AssetAddress) Network() network.Network { return a.network }
func (a AssetAddress) Kind() Kind               { return a.kind }
func (a AssetAddress) Hash160() [20]byte        { return a.hash }
func (a AssetAddress) IsZero() bool             { return a == AssetAddress{} }

// Payload returns the hash as its payload variant.
func (a AssetAddress) Payload() Payload {
	if a.kind == KindScriptHash {
		return ScriptHash(a.hash)
	}
	return PubKeyHash(a.hash)
}

// String encodes base58check(0x13 || version || hash160). Both kinds encode identically.
// The zero value, which New never returns, encodes as the empty string; check IsZero
// before formatting values that did not come from New, Decode or FromBaseAddress.
func (a AssetAddress) String() string {
	version, err := a.network.VersionByte()
	if err != nil {
		return ""
	}
	buf := make([]byte, 0, encodedLen-1)
	buf = append(buf, version)
	buf = append(buf, a.hash[:]...)
	return base58.CheckEncode(buf, Namespace)
}

func (a AssetAddress) EncodeAddress() string {
	return a.String()
}

// ToBaseAddress returns the Bitcoin address for the same network and hash.
func (a AssetAddress) ToBaseAddress() (btcutil.Address, error) {
	params := a.network.Params()
	if params == nil {
		return nil, errors.Wrapf(network.ErrUnsupportedNetwork, "%s", a.network)
	}
	switch a.kind {
	case KindPubKeyHash:
		addr, err := btcutil.NewAddressPubKeyHash(a.hash[:], params)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build pubkey hash address")
		}
		return addr, nil
	case KindScriptHash:
		addr, err := btcutil.NewAddressScriptHashFromHash(a.hash[:], params)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build script hash address")
		}
		return addr, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%d", a.kind)
	}
}

// Compare orders by network, then kind, then hash.
func Compare(a, b AssetAddress) int {
	switch {
	case a.network < b.network:
		return -1
	case a.network > b.network:
		return 1
	case a.kind < b.kind:
		return -1
	case a.kind > b.kind:
		return 1
	}
	return bytes.Compare(a.hash[:], b.hash[:])
}
