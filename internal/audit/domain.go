// Package audit persists the access-decision trail consumed by the
// voirAudit reporting screens of the host application.
package audit

import (
	"errors"
	"time"
)

// Decision outcomes.
const (
	DecisionGranted = "granted"
	DecisionDenied  = "denied"
)

// Entry is one recorded access decision.
type Entry struct {
	ID         string    `json:"id"`
	ActorID    int64     `json:"actorId"`
	ProjectID  int64     `json:"projectId"`
	Permission string    `json:"permission"`
	Decision   string    `json:"decision"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Validate checks the entry is complete enough to store.
func (e Entry) Validate() error {
	if e.ID == "" {
		return errors.New("audit: entry id required")
	}
	if e.Permission == "" {
		return errors.New("audit: permission required")
	}
	if e.Decision != DecisionGranted && e.Decision != DecisionDenied {
		return errors.New("audit: decision must be granted or denied")
	}
	return nil
}
