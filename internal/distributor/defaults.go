package distributor

import "time"

const (
	defaultAckTimeout   = 5 * time.Second
	defaultSyncInterval = 30 * time.Second
	maxEventHistory     = 256

	EventRulesDistributed = "rules_distributed"

	ReasonChecksumMismatch = "checksum_mismatch"
	ReasonStaleVersion     = "stale_version"
	ReasonInvalidPackage   = "invalid_package"
	ReasonWriteFailed      = "write_failed"
)
