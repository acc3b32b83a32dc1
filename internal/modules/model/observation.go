package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ObservationOptionKeys are the only keys accepted in Observation.Options.
var ObservationOptionKeys = map[string]bool{
	"lunar":      true,
	"airmass":    true,
	"offset_ra":  true,
	"offset_dec": true,
	"xframe":     true,
	"yframe":     true,
}

// Observation is one user-submitted imaging request. TotalTime is derived at
// insert time as exposure_time * exposure_count * len(filters) and metered
// against the owner's queue-time quota while the observation is incomplete.
//
// Orphaned is set when the observation row was written but the parent
// program's reference set could not be patched; a reconciliation job may
// re-attach or purge such rows.
type Observation struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProgramID     uuid.UUID                   `gorm:"type:uuid;not null;index" json:"program_id"`
	Target        string                      `gorm:"type:varchar(128);not null" json:"target"`
	ExposureTime  float64                     `gorm:"not null" json:"exposure_time"`
	ExposureCount int                         `gorm:"not null" json:"exposure_count"`
	Binning       int                         `gorm:"not null" json:"binning"`
	Filters       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" swaggertype:"array,string" json:"filters"`
	Options       datatypes.JSONMap           `gorm:"type:jsonb" swaggertype:"object" json:"options"`
	OwnerID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"owner_id"`
	Email         string                      `gorm:"type:varchar(254)" json:"email"`
	Completed     bool                        `gorm:"not null;default:false" json:"completed"`
	Orphaned      bool                        `gorm:"not null;default:false" json:"orphaned"`
	ExecDate      *time.Time                  `json:"exec_date"`
	TotalTime     float64                     `gorm:"not null" json:"total_time"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Observation) TableName() string { return "observations" }
