package model

import (
	"time"

	"github.com/google/uuid"
)

// Affiliation is the legacy analog of Group from an earlier schema revision.
// Superseded by Group; kept for the admin compatibility path.
type Affiliation struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Affiliation) TableName() string { return "affiliations" }
