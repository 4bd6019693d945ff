package sha256

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// HashSize is the array size used to store SHA-256 digests. See Hash.
const HashSize = Size

// MaxHashStringSize is the length of the hex string encoding of a Hash.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string with the wrong number of characters.
var ErrHashStrSize = fmt.Errorf("hash string must be %v characters", MaxHashStringSize)

// ErrOddHashStrLen indicates a hash string whose length is not even, which
// cannot encode whole bytes.
var ErrOddHashStrLen = errors.New("hash string length must be even")

// Hash is a finalized 32-byte digest value.
type Hash [HashSize]byte

// String returns the Hash as a lowercase hexadecimal string.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// Bytes returns a copy of the bytes which represent the hash.
func (hash *Hash) Bytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, hash[:])

	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (hash *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", nhlen,
			HashSize)
	}
	copy(hash[:], newHash)

	return nil
}

// IsEqual returns true if target is the same as hash.
func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// NewHash returns a new Hash from a byte slice. An error is returned if
// the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, err
}

// NewHashFromStr creates a Hash from its hexadecimal string encoding. The
// string must be exactly MaxHashStringSize characters.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	err := Decode(ret, hash)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the hexadecimal string encoding of a Hash to a destination.
func Decode(dst *Hash, src string) error {
	if len(src)%2 != 0 {
		return ErrOddHashStrLen
	}
	if len(src) != MaxHashStringSize {
		return ErrHashStrSize
	}

	var result Hash
	_, err := hex.Decode(result[:], []byte(src))
	if err != nil {
		return err
	}

	copy((*dst)[:], result[:])

	return nil
}

// HashData returns the digest of data as a Hash value.
func HashData(data []byte) Hash {
	return Hash(Sum256(data))
}
