package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LoadStatusSuccess = "success"
	LoadStatusFailed  = "failed"

	LoadTriggerStartup = "startup"
	LoadTriggerAdmin   = "admin"
	LoadTriggerSeed    = "seed"
	LoadTriggerWatch   = "watch"
)

// DatasetLoadLog records one load attempt, successful or not
type DatasetLoadLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Version      uuid.UUID `gorm:"type:uuid;index" json:"version"`
	Source       string    `gorm:"type:varchar(255);not null" json:"source"`
	Trigger      string    `gorm:"column:load_trigger;type:varchar(20);not null;index" json:"trigger"`
	Status       string    `gorm:"type:varchar(20);not null;index" json:"status"`
	Total        int       `gorm:"not null;default:0" json:"total"`
	Loaded       int       `gorm:"not null;default:0" json:"loaded"`
	Skipped      int       `gorm:"not null;default:0" json:"skipped"`
	Normalized   int       `gorm:"not null;default:0" json:"normalized"`
	ErrorMessage string    `gorm:"type:text" json:"error,omitempty"`
	IPAddress    string    `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	CreatedAt    time.Time `gorm:"not null;index" json:"created_at"`
}

// TableName overrides the gorm table name
func (DatasetLoadLog) TableName() string {
	return "dataset_load_logs"
}

func (l *DatasetLoadLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// NewDatasetLoadLog builds a log entry from a load report. report may be nil
// when the load failed before reading the source.
func NewDatasetLoadLog(report *LoadReport, trigger, ipAddress string, loadErr error) *DatasetLoadLog {
	entry := &DatasetLoadLog{
		Trigger:   trigger,
		Status:    LoadStatusSuccess,
		IPAddress: ipAddress,
	}
	if report != nil {
		entry.Version = report.Version
		entry.Source = report.Source
		entry.Total = report.Total
		entry.Loaded = report.Loaded
		entry.Skipped = report.Skipped
		entry.Normalized = report.Normalized
	}
	if loadErr != nil {
		entry.Status = LoadStatusFailed
		entry.ErrorMessage = loadErr.Error()
	}
	return entry
}
