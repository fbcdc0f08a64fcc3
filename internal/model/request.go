// Package model defines domain models shared by the federation components.
package model

import (
	"encoding/json"
	"time"
)

// Priority is the dispatch tier of a request.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists the tiers in dispatch order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the known tiers.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// RequestStatus describes the lifecycle state of a request.
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestProcessing RequestStatus = "processing"
	RequestCompleted  RequestStatus = "completed"
	RequestFailed     RequestStatus = "failed"
)

// Terminal reports whether no further transition is allowed.
func (s RequestStatus) Terminal() bool {
	return s == RequestCompleted || s == RequestFailed
}

// Request is a typed unit of work held by the dispatcher.
type Request struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Payload      json.RawMessage   `json:"payload,omitempty"`
	Priority     Priority          `json:"priority"`
	ClientNode   string            `json:"client_node,omitempty"`
	Requirements map[string]string `json:"requirements,omitempty"`
	SubmittedAt  time.Time         `json:"submitted_at"`
	Status       RequestStatus     `json:"status"`
	Result       json.RawMessage   `json:"result,omitempty"`
	Error        string            `json:"error,omitempty"`
	DispatchedAt *time.Time        `json:"dispatched_at,omitempty"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
}

// Clone returns a deep copy safe to hand outside the owning component.
func (r Request) Clone() Request {
	out := r
	out.Payload = cloneRaw(r.Payload)
	out.Result = cloneRaw(r.Result)
	if r.Requirements != nil {
		out.Requirements = make(map[string]string, len(r.Requirements))
		for k, v := range r.Requirements {
			out.Requirements[k] = v
		}
	}
	if r.DispatchedAt != nil {
		t := *r.DispatchedAt
		out.DispatchedAt = &t
	}
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		out.CompletedAt = &t
	}
	return out
}

// QueueStatus is a point-in-time view of the dispatcher.
type QueueStatus struct {
	Pending        map[Priority]int `json:"pending"`
	TotalPending   int              `json:"total_pending"`
	Processing     int              `json:"processing"`
	Completed      int              `json:"completed"`
	Failed         int              `json:"failed"`
	TotalProcessed int              `json:"total_processed"`
	Demand         int              `json:"demand"`
}

func cloneRaw(b json.RawMessage) json.RawMessage {
	if b == nil {
		return nil
	}
	out := make(json.RawMessage, len(b))
	copy(out, b)
	return out
}
