package models

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name         string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description  string `json:"description" gorm:"type:text"`
	MaxProjects  int    `json:"max_projects" gorm:"not null;default:20"`
	MaxTestCases int    `json:"max_test_cases" gorm:"not null;default:5000"`

	// Relationships
	Members  []OrganizationMember `json:"members,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Projects []Project            `json:"projects,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
