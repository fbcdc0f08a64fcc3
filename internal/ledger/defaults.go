package ledger

import "time"

const (
	defaultDifficulty     = 4
	defaultMaxAttempts    = 100_000
	defaultMiningInterval = 30 * time.Second
	defaultMaxPending     = 10_000

	// BlockReward is the contribution credited to the miner of a block.
	BlockReward = 10
	// EventReward is the contribution credited to the origin of a transaction.
	EventReward = 1

	ctxCheckInterval = 4096

	primaryLedgerFile = "ledger.json"
	lightLedgerFile   = "ledger_light.json"
)
