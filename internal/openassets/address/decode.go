package address

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"

	"github.com/vultisig/openassets/internal/network"
)

var ErrMalformedAddress = errors.New("malformed asset address")

// Decode parses the text form of an asset address. The hash kind is not part of the encoding,
// so the caller supplies it along with the expected network.
func Decode(s string, net network.Network, kind Kind) (AssetAddress, error) {
	want, err := net.VersionByte()
	if err != nil {
		return AssetAddress{}, err
	}

	// CheckDecode strips the first byte as the version; for us that is the namespace.
	body, namespace, err := base58.CheckDecode(s)
	if err != nil {
		return AssetAddress{}, errors.Wrapf(ErrMalformedAddress, "%q: %v", s, err)
	}
	if namespace != Namespace {
		return AssetAddress{}, errors.Wrapf(ErrMalformedAddress, "%q: namespace 0x%02x", s, namespace)
	}
	if len(body) != encodedLen-1 {
		return AssetAddress{}, errors.Wrapf(ErrMalformedAddress, "%q: length %d", s, len(body)+1)
	}
	if body[0] != want {
		return AssetAddress{}, errors.Wrapf(ErrMalformedAddress, "%q: version 0x%02x is not %s", s, body[0], net)
	}

	var hash [20]byte
	copy(hash[:], body[1:])
	switch kind {
	case KindPubKeyHash:
		return New(PubKeyHash(hash), net)
	case KindScriptHash:
		return New(ScriptHash(hash), net)
	default:
		return AssetAddress{}, errors.Wrapf(ErrUnknownKind, "%d", kind)
	}
}
