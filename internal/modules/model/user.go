package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Roles are exclusive: a user holds exactly one of them at a time.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultMaxQueueTime is applied when a user's group carries no quota, 4 hours.
const DefaultMaxQueueTime = 60 * 60 * 4

// DefaultPriority is applied when a user's group carries no priority.
const DefaultPriority = 1

// User is a queue account. Priority and MaxQueueTime are copied by value from
// the user's group at creation time; the group is not a live reference
// afterward. APIToken is the opaque bearer credential the identity middleware
// resolves — credential lifecycle beyond issuance is external.
type User struct {
	ID           uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string            `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
	Profile      datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"profile"`
	Role         string            `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
	Group        string            `gorm:"column:group_name;type:varchar(128)" json:"group"`
	MaxQueueTime float64           `gorm:"not null;default:14400" json:"max_queue_time"`
	Priority     int               `gorm:"not null;default:1" json:"priority"`
	APIToken     string            `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
