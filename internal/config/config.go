// Package config loads the per-node rules file: what to watch, who to push to, where to write.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const defaultRulesDir = "rules"

// WatchedFile is a local rules file the distributor tracks.
type WatchedFile struct {
	Path     string `yaml:"path" validate:"required"`
	RuleType string `yaml:"rule_type" validate:"required"`
}

// Peer is a federation node reachable over gRPC.
type Peer struct {
	NodeID    string   `yaml:"node_id" validate:"required"`
	Address   string   `yaml:"address" validate:"required,hostname_port"`
	RuleTypes []string `yaml:"rule_types" validate:"dive,required"`
}

type Rules struct {
	WatchedFiles []WatchedFile `yaml:"watched_files" validate:"dive"`
	Peers        []Peer        `yaml:"peers" validate:"dive"`
	RulesDir     string        `yaml:"rules_dir"`
}

// Load reads and validates a rules file. An empty path yields an empty config.
func Load(path string) (*Rules, error) {
	if path == "" {
		return &Rules{RulesDir: defaultRulesDir}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a rules document, rejecting unknown keys.
func Parse(data []byte) (*Rules, error) {
	var cfg Rules
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode rules config: %w", err)
	}
	if cfg.RulesDir == "" {
		cfg.RulesDir = defaultRulesDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *Rules) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("validate rules config: %w", err)
	}

	peers := make(map[string]struct{}, len(r.Peers))
	for _, p := range r.Peers {
		if _, dup := peers[p.NodeID]; dup {
			return fmt.Errorf("validate rules config: duplicate peer %q", p.NodeID)
		}
		peers[p.NodeID] = struct{}{}
	}
	paths := make(map[string]struct{}, len(r.WatchedFiles))
	for _, f := range r.WatchedFiles {
		if _, dup := paths[f.Path]; dup {
			return fmt.Errorf("validate rules config: duplicate watched file %q", f.Path)
		}
		paths[f.Path] = struct{}{}
	}
	return nil
}
