package models

import (
	"time"

	"github.com/google/uuid"
)

// AllocationDataset is an immutable snapshot of records and the registry they
// are aggregated against
type AllocationDataset struct {
	Version  uuid.UUID
	Source   string
	LoadedAt time.Time
	Records  []AllocationRecord
	Registry ProvinceRegistry
}

// LoadIssue describes a record rejected while loading
type LoadIssue struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// LoadReport summarises a dataset load
type LoadReport struct {
	Version    uuid.UUID   `json:"version"`
	Source     string      `json:"source"`
	Total      int         `json:"total"`
	Loaded     int         `json:"loaded"`
	Skipped    int         `json:"skipped"`
	Normalized int         `json:"normalized"`
	Provinces  int         `json:"provinces"`
	Issues     []LoadIssue `json:"issues,omitempty"`
	LoadedAt   time.Time   `json:"loaded_at"`
}
