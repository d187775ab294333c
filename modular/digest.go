package modular

import (
	"golang.org/x/crypto/sha3"
	"math/big"
)

// FromDigest data の SHA3-256 ハッシュを modulus で還元した Int
func FromDigest(data []byte, modulus any) (*Int, error) {
	m, err := parseModulus(modulus)
	if err != nil {
		return nil, err
	}
	sum := sha3.Sum256(data)
	return fromBig(new(big.Int).SetBytes(sum[:]), m), nil
}
