package dto

import (
	"time"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
)

// ItemView is an inventory item plus its derived counting outcome.
type ItemView struct {
	model.InventoryItem
	Outcome model.CountOutcome `json:"outcome"`
}

type SessionView struct {
	Status      model.SessionStatus      `json:"status"`
	Settings    *model.InventorySettings `json:"settings,omitempty"`
	Items       []ItemView               `json:"items,omitempty"`
	TotalItems  int                      `json:"totalItems"`
	TotalPicked int                      `json:"totalPicked"`
	TotalActual int                      `json:"totalActual"`
}

const (
	ScanApplied  = "applied"
	ScanBlocked  = "blocked"
	ScanNotFound = "not_found"
)

// ScanResult is the discriminated outcome of one scan event.
type ScanResult struct {
	Status  string    `json:"status"`
	Item    *ItemView `json:"item,omitempty"`
	Message string    `json:"message,omitempty"`
}

// ReportView decorates a stored report with the viewer-specific deletion
// capability, resolved at read time.
type ReportView struct {
	model.ReconciliationReport
	CanDelete bool `json:"canDelete"`
}

// SessionEvent is the envelope published to the platform topic.
type SessionEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}
