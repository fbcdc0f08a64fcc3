package model

import "maps"

// Transaction is an audit event recorded in the ledger.
type Transaction struct {
	ID         string         `json:"id"`
	Timestamp  int64          `json:"timestamp"`
	EventType  string         `json:"event_type"`
	Data       map[string]any `json:"data,omitempty"`
	OriginNode string         `json:"origin_node"`
	Signature  string         `json:"signature"`
}

// Clone returns a copy with its own top-level data map.
func (t Transaction) Clone() Transaction {
	out := t
	if t.Data != nil {
		out.Data = maps.Clone(t.Data)
	}
	return out
}

// Block is a proof-of-work sealed batch of transactions.
type Block struct {
	Height       uint64        `json:"height"`
	Timestamp    int64         `json:"timestamp"`
	PreviousHash string        `json:"previous_hash"`
	Transactions []Transaction `json:"transactions"`
	MerkleRoot   string        `json:"merkle_root"`
	Nonce        uint64        `json:"nonce"`
	Hash         string        `json:"hash"`
	Difficulty   int           `json:"difficulty"`
	Miner        string        `json:"miner"`
	MiningTimeMs int64         `json:"mining_time_ms"`
}

// Clone returns a copy that shares no transactions with b.
func (b Block) Clone() Block {
	out := b
	out.Transactions = CloneTransactions(b.Transactions)
	return out
}

// CloneBlocks deep-copies a slice of blocks.
func CloneBlocks(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.Clone()
	}
	return out
}

// CloneTransactions deep-copies a slice of transactions.
func CloneTransactions(txs []Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = tx.Clone()
	}
	return out
}

// ChainStatus summarises the local ledger.
type ChainStatus struct {
	Blocks        int    `json:"blocks"`
	Pending       int    `json:"pending"`
	Difficulty    int    `json:"difficulty"`
	MiningEnabled bool   `json:"mining_enabled"`
	HeadHeight    uint64 `json:"head_height"`
	HeadHash      string `json:"head_hash"`
	LastMiningErr string `json:"last_mining_error,omitempty"`
}

// ArchiveState describes what the block archive already holds.
type ArchiveState struct {
	Blocks    uint64 `json:"blocks"`
	MaxHeight uint64 `json:"max_height"`
}
