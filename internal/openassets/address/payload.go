package address

import (
	"strings"

	"github.com/pkg/errors"
)

// Payload is the hash an address commits to. It is sealed: only this package declares variants,
// and every type switch over it must handle PubKeyHash, ScriptHash and WitnessProgram.
type Payload interface {
	isPayload()
}

// PubKeyHash is the HASH160 of a public key.
type PubKeyHash [20]byte

// ScriptHash is the HASH160 of a redeem script.
type ScriptHash [20]byte

// WitnessProgram is a segwit or taproot program. It has no asset address.
type WitnessProgram struct {
	Version byte
	Program []byte
}

func (PubKeyHash) isPayload()     {}
func (ScriptHash) isPayload()     {}
func (WitnessProgram) isPayload() {}

// Kind tells which hash interpretation an asset address carries. The encoded form does not
// include it, so decoders must be told.
type Kind uint8

const (
	KindPubKeyHash Kind = iota + 1
	KindScriptHash
)

var ErrUnknownKind = errors.New("unknown address kind")

func (k Kind) String() string {
	switch k {
	case KindPubKeyHash:
		return "p2pkh"
	case KindScriptHash:
		return "p2sh"
	default:
		return "unknown"
	}
}

// ParseKind accepts "p2pkh" or "p2sh". An empty string means p2pkh.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "p2pkh", "pubkeyhash":
		return KindPubKeyHash, nil
	case "p2sh", "scripthash":
		return KindScriptHash, nil
	default:
		return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
	}
}
