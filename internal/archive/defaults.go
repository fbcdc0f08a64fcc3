package archive

import "time"

const (
	defaultBatchSize     = 64
	defaultFlushInterval = 5 * time.Second
	defaultFlushRate     = 10
	defaultStateRetry    = 5 * time.Second
	enqueueTimeout       = 2 * time.Second
)
