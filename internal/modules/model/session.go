package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is a reserved time window on the telescope, linked to a program.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProgramID uuid.UUID `gorm:"type:uuid;not null;index" json:"program_id"`
	Start     time.Time `gorm:"not null" json:"start"`
	End       time.Time `gorm:"not null" json:"end"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Email     string    `gorm:"type:varchar(254)" json:"email"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Session) TableName() string { return "sessions" }
