// Package digest provides the hashing primitives shared by the ledger and the rule distributor.
package digest

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Size is the length of a hex encoded digest.
const Size = chainhash.HashSize * 2

// SHA256Hex returns the lowercase hex SHA-256 of b.
func SHA256Hex(b []byte) string {
	return hex.EncodeToString(chainhash.HashB(b))
}

// SHA256HexString is SHA256Hex for string input.
func SHA256HexString(s string) string {
	return SHA256Hex([]byte(s))
}

// HasZeroPrefix reports whether hash starts with n '0' characters.
func HasZeroPrefix(hash string, n int) bool {
	if n <= 0 {
		return true
	}
	if len(hash) < n {
		return false
	}
	return strings.Count(hash[:n], "0") == n
}
