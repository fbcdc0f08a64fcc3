package ledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/pkg/digest"
)

// EmptyMerkleRoot is the merkle root of a block without transactions.
var EmptyMerkleRoot = strings.Repeat("0", digest.Size)

// BlockHash is the digest over the canonical header fields of a block.
func BlockHash(height uint64, timestamp int64, previousHash, merkleRoot string, nonce uint64) string {
	return digest.SHA256HexString(fmt.Sprintf("%d|%d|%s|%s|%d", height, timestamp, previousHash, merkleRoot, nonce))
}

// HashOf recomputes the digest of b from its header fields.
func HashOf(b model.Block) string {
	return BlockHash(b.Height, b.Timestamp, b.PreviousHash, b.MerkleRoot, b.Nonce)
}

// Sign derives the content signature of a transaction from its fields and data.
func Sign(tx model.Transaction) (string, error) {
	data, err := json.Marshal(tx.Data)
	if err != nil {
		return "", fmt.Errorf("encode transaction data: %w", err)
	}
	return digest.SHA256HexString(fmt.Sprintf("%s|%d|%s|%s|%s", tx.ID, tx.Timestamp, tx.EventType, data, tx.OriginNode)), nil
}

// TransactionHash is the merkle leaf of a signed transaction.
func TransactionHash(tx model.Transaction) string {
	return digest.SHA256HexString(fmt.Sprintf("%s|%d|%s|%s|%s", tx.ID, tx.Timestamp, tx.EventType, tx.OriginNode, tx.Signature))
}

// MerkleRoot folds transaction hashes pairwise until one remains. An odd level
// pairs its last hash with itself. The result depends on transaction order.
func MerkleRoot(txs []model.Transaction) string {
	if len(txs) == 0 {
		return EmptyMerkleRoot
	}

	level := make([]string, len(txs))
	for i, tx := range txs {
		level[i] = TransactionHash(tx)
	}

	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]string, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, digest.SHA256HexString(level[i]+level[i+1]))
		}
		level = next
	}

	return level[0]
}
