package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/pkg/digest"
)

// Mine searches nonces from zero until the header hash carries candidate.Difficulty
// leading zeros. It gives up with model.ErrMiningExhausted after maxAttempts nonces
// and also stops early when ctx is canceled. The returned count is the number of
// nonces tried.
func Mine(ctx context.Context, candidate model.Block, maxAttempts uint64) (model.Block, uint64, error) {
	started := time.Now()
	for nonce := uint64(0); nonce < maxAttempts; nonce++ {
		if nonce%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return model.Block{}, nonce, err
			}
		}
		hash := BlockHash(candidate.Height, candidate.Timestamp, candidate.PreviousHash, candidate.MerkleRoot, nonce)
		if digest.HasZeroPrefix(hash, candidate.Difficulty) {
			block := candidate.Clone()
			block.Nonce = nonce
			block.Hash = hash
			block.MiningTimeMs = time.Since(started).Milliseconds()
			return block, nonce + 1, nil
		}
	}
	return model.Block{}, maxAttempts, fmt.Errorf("height %d after %d attempts: %w", candidate.Height, maxAttempts, model.ErrMiningExhausted)
}

// Validate checks that block extends head: consecutive height, linked previous hash,
// a hash that matches its header, a merkle root that matches its transactions and
// enough leading zeros. The required work is the larger of minDifficulty and the
// block's own difficulty.
func Validate(head, block model.Block, minDifficulty int) error {
	reject := func(reason, detail string) error {
		return &InvalidBlockError{Height: block.Height, Hash: block.Hash, Reason: reason, Detail: detail}
	}

	if block.Height != head.Height+1 {
		return reject(ReasonHeightMismatch, fmt.Sprintf("expected %d, got %d", head.Height+1, block.Height))
	}
	if block.PreviousHash != head.Hash {
		return reject(ReasonPreviousHashMismatch, fmt.Sprintf("expected %s", head.Hash))
	}
	if computed := HashOf(block); computed != block.Hash {
		return reject(ReasonHashMismatch, fmt.Sprintf("recomputed %s", computed))
	}
	if computed := MerkleRoot(block.Transactions); computed != block.MerkleRoot {
		return reject(ReasonMerkleMismatch, fmt.Sprintf("recomputed %s", computed))
	}
	required := max(minDifficulty, block.Difficulty)
	if !digest.HasZeroPrefix(block.Hash, required) {
		return reject(ReasonInsufficientWork, fmt.Sprintf("need %d leading zeros", required))
	}
	return nil
}

// VerifyChain checks that blocks start at the fixed genesis and that every block
// validly extends its predecessor.
func VerifyChain(blocks []model.Block) error {
	if len(blocks) == 0 {
		return fmt.Errorf("empty chain: %w", model.ErrInvalidBlock)
	}
	if g := blocks[0]; g.Height != 0 || g.Hash != genesis.Hash || HashOf(g) != g.Hash {
		return &InvalidBlockError{Height: blocks[0].Height, Hash: blocks[0].Hash, Reason: ReasonHashMismatch, Detail: "unexpected genesis"}
	}
	for i := 1; i < len(blocks); i++ {
		if err := Validate(blocks[i-1], blocks[i], 0); err != nil {
			return err
		}
	}
	return nil
}
