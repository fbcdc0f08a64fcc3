// Package ledger implements the federation's append-only proof-of-work audit chain.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/elias-federation/internal/clock"
	"github.com/goodnatureofminers/elias-federation/internal/model"
)

type Config struct {
	NodeID         string
	MiningEnabled  bool
	Difficulty     int
	MaxAttempts    uint64
	MiningInterval time.Duration
	// MaxPending bounds the pending pool; the oldest transactions are dropped past it.
	MaxPending     int
}

type Option func(*Ledger)

// WithBroadcaster announces mined blocks to peers.
func WithBroadcaster(b Broadcaster) Option {
	return func(l *Ledger) { l.peers = b }
}

// WithBlockSink forwards every appended block, mined or received.
func WithBlockSink(s BlockSink) Option {
	return func(l *Ledger) { l.sink = s }
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

type Ledger struct {
	logger  *zap.Logger
	metrics Metrics
	store   Store
	peers   Broadcaster
	sink    BlockSink
	now     func() time.Time
	newID   func() string

	nodeID         string
	miningEnabled  bool
	difficulty     int
	maxAttempts    uint64
	miningInterval time.Duration
	maxPending     int

	// mineMu serializes mining cycles; mu guards chain state.
	mineMu        sync.Mutex
	mu            sync.RWMutex
	chain         []model.Block
	pending       []model.Transaction
	lastMiningErr error
	// chainScores and pendingScores are the contribution tallies of chain and
	// pending pool, kept in step with them.
	chainScores   map[string]int
	pendingScores map[string]int
}

// New loads the persisted chain, or starts from genesis when none exists.
// A persisted chain that fails verification is an error.
func New(cfg Config, store Store, metrics Metrics, logger *zap.Logger, opts ...Option) (*Ledger, error) {
	if cfg.NodeID == "" {
		return nil, errors.New("ledger node id is required")
	}
	if store == nil {
		return nil, errors.New("ledger store is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}

	l := &Ledger{
		logger:         logger.Named("ledger").With(zap.String("node", cfg.NodeID)),
		metrics:        metrics,
		store:          store,
		now:            time.Now,
		newID:          uuid.NewString,
		nodeID:         cfg.NodeID,
		miningEnabled:  cfg.MiningEnabled,
		difficulty:     cfg.Difficulty,
		maxAttempts:    cfg.MaxAttempts,
		miningInterval: cfg.MiningInterval,
		maxPending:     cfg.MaxPending,
		pending:        []model.Transaction{},
		chainScores:    make(map[string]int),
		pendingScores:  make(map[string]int),
	}
	if l.difficulty <= 0 {
		l.difficulty = defaultDifficulty
	}
	if l.maxAttempts == 0 {
		l.maxAttempts = defaultMaxAttempts
	}
	if l.miningInterval <= 0 {
		l.miningInterval = defaultMiningInterval
	}
	if l.maxPending <= 0 {
		l.maxPending = defaultMaxPending
	}
	for _, opt := range opts {
		opt(l)
	}

	blocks, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	if len(blocks) == 0 {
		blocks = []model.Block{Genesis()}
		if err := store.Save(blocks); err != nil {
			return nil, fmt.Errorf("persist genesis: %w", err)
		}
		l.logger.Info("initialized ledger with genesis block", zap.String("hash", blocks[0].Hash))
	} else if err := VerifyChain(blocks); err != nil {
		return nil, fmt.Errorf("verify persisted ledger: %w", err)
	}
	l.chain = blocks
	for _, b := range blocks {
		creditBlock(l.chainScores, b)
	}

	l.metrics.SetChain(l.chain[len(l.chain)-1].Height, 0)
	return l, nil
}

// RecordEvent signs an audit event and appends it to the pending pool. It never
// waits for mining. An empty origin means the local node.
func (l *Ledger) RecordEvent(eventType string, data map[string]any, origin string) (model.Transaction, error) {
	if origin == "" {
		origin = l.nodeID
	}
	tx := model.Transaction{
		ID:         l.newID(),
		Timestamp:  l.now().UnixMilli(),
		EventType:  eventType,
		Data:       maps.Clone(data),
		OriginNode: origin,
	}
	sig, err := Sign(tx)
	if err != nil {
		return model.Transaction{}, err
	}
	tx.Signature = sig

	l.mu.Lock()
	var dropped []model.Transaction
	if over := len(l.pending) + 1 - l.maxPending; over > 0 {
		dropped = l.pending[:over]
		l.pending = slices.Clone(l.pending[over:])
		for _, d := range dropped {
			debit(l.pendingScores, d.OriginNode, EventReward)
		}
	}
	l.pending = append(l.pending, tx)
	l.pendingScores[tx.OriginNode] += EventReward
	height, pending := l.chain[len(l.chain)-1].Height, len(l.pending)
	l.mu.Unlock()

	l.metrics.ObserveEventRecorded()
	l.metrics.SetChain(height, pending)
	if len(dropped) > 0 {
		l.metrics.ObservePendingDropped(len(dropped))
		l.logger.Warn("pending pool full, dropped oldest transactions",
			zap.Int("max_pending", l.maxPending),
			zap.Int("dropped", len(dropped)),
			zap.String("oldest_dropped", dropped[0].ID),
		)
	}
	l.logger.Debug("event recorded", zap.String("event_type", eventType), zap.String("tx_id", tx.ID))
	return tx.Clone(), nil
}

// MineOnce seals the current pending pool into a block. It returns nil without an
// error when there is nothing to mine. On exhaustion the pool is left untouched
// for the next cycle.
func (l *Ledger) MineOnce(ctx context.Context) (*model.Block, error) {
	l.mineMu.Lock()
	defer l.mineMu.Unlock()

	l.mu.RLock()
	head := l.chain[len(l.chain)-1]
	txs := model.CloneTransactions(l.pending)
	l.mu.RUnlock()

	if len(txs) == 0 {
		return nil, nil
	}

	candidate := model.Block{
		Height:       head.Height + 1,
		Timestamp:    l.now().UnixMilli(),
		PreviousHash: head.Hash,
		Transactions: txs,
		MerkleRoot:   MerkleRoot(txs),
		Difficulty:   l.difficulty,
		Miner:        l.nodeID,
	}

	started := time.Now()
	block, attempts, err := Mine(ctx, candidate, l.maxAttempts)
	l.metrics.ObserveMining(err, attempts, started)
	if err != nil {
		l.mu.Lock()
		l.lastMiningErr = err
		l.mu.Unlock()
		return nil, err
	}

	if err := l.append(ctx, block); err != nil {
		var invalid *InvalidBlockError
		if errors.As(err, &invalid) {
			err = fmt.Errorf("%w: %w", errStaleCandidate, err)
		}
		l.mu.Lock()
		l.lastMiningErr = err
		l.mu.Unlock()
		return nil, err
	}

	l.mu.Lock()
	l.lastMiningErr = nil
	l.mu.Unlock()

	l.logger.Info("block mined",
		zap.Uint64("height", block.Height),
		zap.String("hash", block.Hash),
		zap.Int("transactions", len(block.Transactions)),
		zap.Uint64("attempts", attempts),
		zap.Int64("mining_time_ms", block.MiningTimeMs),
	)
	if l.peers != nil {
		l.peers.BroadcastBlock(ctx, block.Clone())
	}
	return &block, nil
}

// ReceiveBlock appends a peer's block if it validly extends the local head.
func (l *Ledger) ReceiveBlock(ctx context.Context, block model.Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := l.append(ctx, block)
	var invalid *InvalidBlockError
	switch {
	case errors.As(err, &invalid):
		l.metrics.ObserveBlockReceived(invalid.Reason)
		l.logger.Warn("rejected peer block", zap.Uint64("height", block.Height), zap.String("miner", block.Miner), zap.Error(err))
	case err != nil:
		l.metrics.ObserveBlockReceived("error")
	default:
		l.metrics.ObserveBlockReceived("accepted")
		l.logger.Info("accepted peer block", zap.Uint64("height", block.Height), zap.String("miner", block.Miner))
	}
	return err
}

// append validates block against the head, persists the extended chain and only
// then makes it visible. Transactions it carries leave the pending pool.
func (l *Ledger) append(ctx context.Context, block model.Block) error {
	l.mu.Lock()
	head := l.chain[len(l.chain)-1]
	if err := Validate(head, block, l.difficulty); err != nil {
		l.mu.Unlock()
		return err
	}

	extended := make([]model.Block, len(l.chain), len(l.chain)+1)
	copy(extended, l.chain)
	extended = append(extended, block.Clone())
	if err := l.store.Save(extended); err != nil {
		l.mu.Unlock()
		return fmt.Errorf("persist block %d: %w", block.Height, err)
	}
	l.chain = extended
	creditBlock(l.chainScores, block)

	included := make(map[string]struct{}, len(block.Transactions))
	for _, tx := range block.Transactions {
		included[tx.ID] = struct{}{}
	}
	remaining := make([]model.Transaction, 0, len(l.pending))
	for _, tx := range l.pending {
		if _, ok := included[tx.ID]; ok {
			debit(l.pendingScores, tx.OriginNode, EventReward)
			continue
		}
		remaining = append(remaining, tx)
	}
	l.pending = remaining
	pending := len(l.pending)
	l.mu.Unlock()

	l.metrics.SetChain(block.Height, pending)
	if l.sink != nil {
		l.sink.BlockAppended(ctx, block.Clone())
	}
	return nil
}

// Run mines on a fixed interval until ctx is done. Light nodes only wait.
func (l *Ledger) Run(ctx context.Context) error {
	if !l.miningEnabled {
		l.logger.Info("mining disabled; ledger will only accept peer blocks")
		<-ctx.Done()
		return ctx.Err()
	}

	l.logger.Info("mining loop started", zap.Duration("interval", l.miningInterval), zap.Int("difficulty", l.difficulty))
	return clock.Every(ctx, l.miningInterval, func(ctx context.Context) {
		if _, err := l.MineOnce(ctx); err != nil && ctx.Err() == nil {
			l.logger.Warn("mining cycle failed", zap.Error(err))
		}
	})
}

// Chain returns a copy of every block from genesis to head.
func (l *Ledger) Chain() []model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return model.CloneBlocks(l.chain)
}

// Pending returns a copy of transactions not yet mined.
func (l *Ledger) Pending() []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return model.CloneTransactions(l.pending)
}

func (l *Ledger) Head() model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.chain[len(l.chain)-1].Clone()
}

// Block looks a block up by hash.
func (l *Ledger) Block(hash string) (model.Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, b := range l.chain {
		if b.Hash == hash {
			return b.Clone(), nil
		}
	}
	return model.Block{}, fmt.Errorf("block %s: %w", hash, model.ErrNotFound)
}

// BlocksFrom returns copies of blocks with height >= from.
func (l *Ledger) BlocksFrom(from uint64) []model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if from >= uint64(len(l.chain)) {
		return []model.Block{}
	}
	return model.CloneBlocks(l.chain[from:])
}

func (l *Ledger) Status() model.ChainStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	head := l.chain[len(l.chain)-1]
	status := model.ChainStatus{
		Blocks:        len(l.chain),
		Pending:       len(l.pending),
		Difficulty:    l.difficulty,
		MiningEnabled: l.miningEnabled,
		HeadHeight:    head.Height,
		HeadHash:      head.Hash,
	}
	if l.lastMiningErr != nil {
		status.LastMiningErr = l.lastMiningErr.Error()
	}
	return status
}

// Contributions credits BlockReward per mined block and EventReward per
// transaction origin, over the chain and the pending pool.
func (l *Ledger) Contributions() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	scores := maps.Clone(l.chainScores)
	for node, score := range l.pendingScores {
		scores[node] += score
	}
	return scores
}

// Contribution is the score of a single node; unknown nodes score zero.
func (l *Ledger) Contribution(nodeID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.chainScores[nodeID] + l.pendingScores[nodeID]
}

func creditBlock(scores map[string]int, b model.Block) {
	if b.Miner != "" {
		scores[b.Miner] += BlockReward
	}
	for _, tx := range b.Transactions {
		scores[tx.OriginNode] += EventReward
	}
}

func debit(scores map[string]int, node string, n int) {
	if scores[node] <= n {
		delete(scores, node)
		return
	}
	scores[node] -= n
}
