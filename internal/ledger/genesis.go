package ledger

import (
	"strings"

	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/pkg/digest"
)

// 2025-01-01T00:00:00Z in milliseconds.
const genesisTimestamp int64 = 1_735_689_600_000

var genesis = func() model.Block {
	b := model.Block{
		Height:       0,
		Timestamp:    genesisTimestamp,
		PreviousHash: strings.Repeat("0", digest.Size),
		Transactions: []model.Transaction{},
		MerkleRoot:   EmptyMerkleRoot,
		Nonce:        0,
		Difficulty:   0,
	}
	b.Hash = HashOf(b)
	return b
}()

// Genesis returns the fixed first block shared by every node.
func Genesis() model.Block {
	return genesis.Clone()
}
