package ledger

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/elias-federation/internal/model"
)

// Rejection reasons reported by block validation.
const (
	ReasonHeightMismatch       = "height_mismatch"
	ReasonPreviousHashMismatch = "previous_hash_mismatch"
	ReasonHashMismatch         = "hash_mismatch"
	ReasonMerkleMismatch       = "merkle_mismatch"
	ReasonInsufficientWork     = "insufficient_work"
)

var errStaleCandidate = errors.New("chain head moved while mining")

// InvalidBlockError explains why a block was not appended.
type InvalidBlockError struct {
	Height uint64
	Hash   string
	Reason string
	Detail string
}

func (e *InvalidBlockError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid block %d (%s): %s", e.Height, e.Hash, e.Reason)
	}
	return fmt.Sprintf("invalid block %d (%s): %s: %s", e.Height, e.Hash, e.Reason, e.Detail)
}

// Unwrap lets callers match any rejection with errors.Is(err, model.ErrInvalidBlock).
func (e *InvalidBlockError) Unwrap() error {
	return model.ErrInvalidBlock
}
