package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is an append-only audit record of a mutation. Rows are never
// updated or deleted by the application.
type ActivityLog struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Action         ActivityAction  `json:"action" gorm:"type:varchar(20);not null"`
	ObjectType     ObjectType      `json:"object_type" gorm:"type:varchar(50);not null;index:idx_activity_object"`
	ObjectID       uuid.UUID       `json:"object_id" gorm:"type:uuid;not null;index:idx_activity_object"`
	Changes        json.RawMessage `json:"changes,omitempty" gorm:"type:jsonb"`
	CreatedAt      time.Time       `json:"created_at" gorm:"index"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// BeforeCreate sets the UUID if not already set
func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
