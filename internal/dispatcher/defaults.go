package dispatcher

import (
	"time"

	"github.com/goodnatureofminers/elias-federation/internal/model"
)

const (
	defaultSweepInterval = 30 * time.Minute
	defaultRetention     = time.Hour
	defaultWorkerCount   = 4

	EventRequestSubmitted = "request_submitted"
	EventRequestCompleted = "request_completed"
	EventRequestFailed    = "request_failed"
)

var typePriorities = map[string]model.Priority{
	"system_issue":     model.PriorityHigh,
	"security_alert":   model.PriorityHigh,
	"node_failure":     model.PriorityHigh,
	"rule_sync":        model.PriorityMedium,
	"ml_inference":     model.PriorityMedium,
	"model_training":   model.PriorityLow,
	"analytics_report": model.PriorityLow,
	"log_transmission": model.PriorityLow,
}

// PriorityFor maps a request type to its tier. Unknown types are medium.
func PriorityFor(requestType string) model.Priority {
	if p, ok := typePriorities[requestType]; ok {
		return p
	}
	return model.PriorityMedium
}
