package model

import (
	"slices"
	"time"
)

// WatchedFile is a configuration artifact tracked by the rule distributor.
type WatchedFile struct {
	Path         string `json:"path"`
	RuleType     string `json:"rule_type"`
	LastChecksum string `json:"last_checksum,omitempty"`
	Version      int64  `json:"version"`
}

// ClientRegistration records which rule types a peer subscribed to.
type ClientRegistration struct {
	NodeID       string    `json:"node_id"`
	RuleTypes    []string  `json:"rule_types"`
	RegisteredAt time.Time `json:"registered_at"`
	LastSeen     time.Time `json:"last_seen"`
}

// Subscribes reports whether the registration includes ruleType.
func (c ClientRegistration) Subscribes(ruleType string) bool {
	return slices.Contains(c.RuleTypes, ruleType)
}

// Clone returns a copy that does not share the rule type slice.
func (c ClientRegistration) Clone() ClientRegistration {
	out := c
	out.RuleTypes = slices.Clone(c.RuleTypes)
	return out
}

// UpdatePackage is the unit of rule content sent to peers.
type UpdatePackage struct {
	RuleType   string    `json:"rule_type"`
	FilePath   string    `json:"file_path"`
	Content    string    `json:"content"`
	Checksum   string    `json:"checksum"`
	Version    int64     `json:"version"`
	UpdatedAt  time.Time `json:"updated_at"`
	SourceNode string    `json:"source_node"`
}

// RuleUpdateResponse is the acknowledgment a peer returns for an UpdatePackage.
type RuleUpdateResponse struct {
	NodeID   string `json:"node_id"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// DeliveryOutcome is the per-client result of a distribution.
type DeliveryOutcome string

const (
	DeliveryOK      DeliveryOutcome = "ok"
	DeliveryError   DeliveryOutcome = "error"
	DeliveryTimeout DeliveryOutcome = "timeout"
)

// DeliveryResult carries the outcome and, for failures, the reason.
type DeliveryResult struct {
	Outcome DeliveryOutcome `json:"outcome"`
	Error   string          `json:"error,omitempty"`
}

// DistributionEvent is one entry of the distribution log.
type DistributionEvent struct {
	Timestamp       time.Time                 `json:"timestamp"`
	RuleType        string                    `json:"rule_type"`
	FilePath        string                    `json:"file_path"`
	TargetClients   []string                  `json:"target_clients"`
	PerClientResult map[string]DeliveryResult `json:"per_client_result"`
	Checksum        string                    `json:"checksum"`
	Version         int64                     `json:"version"`
}

// Clone returns a copy that shares no slices or maps with e.
func (e DistributionEvent) Clone() DistributionEvent {
	out := e
	out.TargetClients = slices.Clone(e.TargetClients)
	out.PerClientResult = make(map[string]DeliveryResult, len(e.PerClientResult))
	for k, v := range e.PerClientResult {
		out.PerClientResult[k] = v
	}
	return out
}

// DistributionStatus summarises the distributor state.
type DistributionStatus struct {
	WatchedFiles      int                `json:"watched_files"`
	RegisteredClients int                `json:"registered_clients"`
	TotalDistributed  int                `json:"total_distributed"`
	LastDistribution  *DistributionEvent `json:"last_distribution,omitempty"`
}
