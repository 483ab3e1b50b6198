package chain

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

var ErrInvalidAddress = errors.New("invalid address")

// ValidateAddress checks that addr is a well formed bech32 string whose
// human readable part is prefix and whose payload is a 20 or 32 byte
// account or module address.
func ValidateAddress(addr, prefix string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}

	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}

	if hrp != prefix {
		return fmt.Errorf("%w: expected prefix %q, got %q", ErrInvalidAddress, prefix, hrp)
	}

	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}

	if len(payload) != 20 && len(payload) != 32 {
		return fmt.Errorf("%w: unexpected payload length %d", ErrInvalidAddress, len(payload))
	}

	return nil
}

// EncodeAddress renders a raw account payload with the given prefix.
func EncodeAddress(prefix string, payload []byte) (string, error) {
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}

	return bech32.Encode(prefix, data)
}
