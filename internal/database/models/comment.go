package models

import (
	"github.com/google/uuid"
)

// Comment is authored by a user and attached to some object. It may be deleted
// by its author or a platform admin only.
type Comment struct {
	BaseModel
	AuthorID   uuid.UUID  `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	ObjectType ObjectType `json:"object_type" gorm:"type:varchar(50);not null;index:idx_comments_object" validate:"required"`
	ObjectID   uuid.UUID  `json:"object_id" gorm:"type:uuid;not null;index:idx_comments_object" validate:"required"`
	Body       string     `json:"body" gorm:"type:text;not null" validate:"required"`

	// Relationships
	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
