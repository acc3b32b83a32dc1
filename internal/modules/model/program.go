package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GeneralProgramName is the bootstrap program every deployment carries.
// It can never be deleted.
const GeneralProgramName = "General"

// Executor strategies a program can be scheduled with.
const (
	ExecutorGeneral     = "general"
	ExecutorAsteroid    = "asteroid"
	ExecutorVariable    = "variable"
	ExecutorSolarSystem = "solarsystem"
	ExecutorCustom      = "custom"
)

// ValidExecutor reports whether s is a known execution strategy.
func ValidExecutor(s string) bool {
	switch s {
	case ExecutorGeneral, ExecutorAsteroid, ExecutorVariable, ExecutorSolarSystem, ExecutorCustom:
		return true
	}
	return false
}

// Program groups related observation requests and reservation sessions.
// A nil OwnerID marks a public program visible to everyone.
//
// ObservationIDs/SessionIDs/SharedWith are reference sets maintained by the
// service layer; the storage layer enforces no foreign keys.
type Program struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(128);not null;index:idx_programs_owner_name" json:"name"`
	Executor  string     `gorm:"type:varchar(32);not null" json:"executor"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index:idx_programs_owner_name" json:"owner_id"`
	Email     string     `gorm:"type:varchar(254)" json:"email"`
	Completed bool       `gorm:"not null;default:false" json:"completed"`

	ObservationIDs datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"observations"`
	SessionIDs     datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"sessions"`
	SharedWith     datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"shared_with"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Program) TableName() string { return "programs" }

// VisibleTo reports whether the program may be read by the given user:
// the owner, everyone for public programs, or anyone it was shared with.
func (p *Program) VisibleTo(userID uuid.UUID) bool {
	if p.OwnerID == nil {
		return true
	}
	if *p.OwnerID == userID {
		return true
	}
	for _, id := range p.SharedWith {
		if id == userID.String() {
			return true
		}
	}
	return false
}
