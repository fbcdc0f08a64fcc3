package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goodnatureofminers/elias-federation/internal/model"
	"github.com/goodnatureofminers/elias-federation/pkg/atomicfile"
)

type ledgerFile struct {
	Blocks []model.Block `json:"blocks"`
}

// FileStore keeps the chain as indented JSON and replaces the file atomically.
type FileStore struct {
	path string
}

// NewFileStore places the ledger file in dir. Mining nodes use ledger.json and
// light nodes ledger_light.json so both can share a data directory.
func NewFileStore(dir string, mining bool) *FileStore {
	name := lightLedgerFile
	if mining {
		name = primaryLedgerFile
	}
	return &FileStore{path: filepath.Join(dir, name)}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() ([]model.Block, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Block{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger %s: %w", s.path, err)
	}

	var f ledgerFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode ledger %s: %w", s.path, err)
	}
	if f.Blocks == nil {
		f.Blocks = []model.Block{}
	}
	return f.Blocks, nil
}

func (s *FileStore) Save(blocks []model.Block) error {
	raw, err := json.MarshalIndent(ledgerFile{Blocks: blocks}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	return atomicfile.WriteFile(s.path, raw, 0o644)
}
