package models

// User represents a platform account. Users are created at signup and are never
// hard-deleted; deactivation happens through the status field.
type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"not null;size:255"`
	DisplayName  string     `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	IsAdmin      bool       `json:"is_admin" gorm:"default:false"`

	// Relationships
	Memberships []OrganizationMember `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsActive reports whether the account may authenticate
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
