// Package shautil provides convenience helpers around the sha256 engine:
// one-shot digest functions and the hex codec used at tool boundaries.
package shautil

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// ErrOddLengthHexString indicates a hex string whose length is not even.
// Such a string cannot encode whole bytes and is rejected before decoding.
var ErrOddLengthHexString = errors.New("odd length hex string")

// EncodeToString returns the lowercase hexadecimal encoding of src.
func EncodeToString(src []byte) string {
	return hex.EncodeToString(src)
}

// DecodeString returns the bytes represented by the hexadecimal string str.
// The string must have even length and contain only hex digits; nothing is
// returned on failure.
func DecodeString(str string) ([]byte, error) {
	if len(str)%2 != 0 {
		return nil, ErrOddLengthHexString
	}
	data, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.Wrap(err, "decode hex string")
	}
	return data, nil
}
