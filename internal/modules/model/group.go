package model

import (
	"time"

	"github.com/google/uuid"
)

// Group is a template of default priority/quota values applied at user
// creation. It is not a live FK target afterward.
type Group struct {
	ID                  uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`
	Priority            int       `gorm:"not null" json:"priority"`
	DefaultPriority     int       `gorm:"not null" json:"default_priority"`
	DefaultMaxQueueTime float64   `gorm:"not null" json:"default_max_queue_time"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Group) TableName() string { return "groups" }
