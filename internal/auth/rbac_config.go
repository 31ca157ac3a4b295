package auth

import (
	"fmt"
	"os"

	"testtrack-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// RbacConfig is the default role-to-grant matrix applied to every new
// organization. Managers can tighten or extend the seeded rows afterwards.
type RbacConfig struct {
	Grants map[string]map[string][]string `yaml:"grants"`
}

// LoadRbacConfig reads the grant matrix from a YAML file. A missing file
// falls back to the built-in defaults; a malformed one is an error.
func LoadRbacConfig(path string) (*RbacConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRbacConfig(), nil
		}
		return nil, fmt.Errorf("error reading rbac config file: %w", err)
	}

	var config RbacConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error unmarshaling rbac config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("rbac config validation failed: %w", err)
	}

	return &config, nil
}

// DefaultRbacConfig returns the built-in grant matrix
func DefaultRbacConfig() *RbacConfig {
	full := []string{"CREATE", "READ", "UPDATE", "DELETE"}
	edit := []string{"CREATE", "READ", "UPDATE"}
	read := []string{"READ"}

	return &RbacConfig{
		Grants: map[string]map[string][]string{
			string(models.MemberRoleOrganizationManager): {
				string(models.ObjectTypeProject):   full,
				string(models.ObjectTypeTestCase):  full,
				string(models.ObjectTypeTestSuite): full,
				string(models.ObjectTypeTestPlan):  full,
				string(models.ObjectTypeTestRun):   full,
				string(models.ObjectTypeComment):   full,
			},
			string(models.MemberRoleProjectManager): {
				string(models.ObjectTypeProject):   full,
				string(models.ObjectTypeTestCase):  full,
				string(models.ObjectTypeTestSuite): full,
				string(models.ObjectTypeTestPlan):  full,
				string(models.ObjectTypeTestRun):   full,
				string(models.ObjectTypeComment):   edit,
			},
			string(models.MemberRoleProductOwner): {
				string(models.ObjectTypeProject):   read,
				string(models.ObjectTypeTestCase):  edit,
				string(models.ObjectTypeTestSuite): edit,
				string(models.ObjectTypeTestPlan):  full,
				string(models.ObjectTypeTestRun):   read,
				string(models.ObjectTypeComment):   edit,
			},
			string(models.MemberRoleQAEngineer): {
				string(models.ObjectTypeProject):   read,
				string(models.ObjectTypeTestCase):  full,
				string(models.ObjectTypeTestSuite): edit,
				string(models.ObjectTypeTestPlan):  read,
				string(models.ObjectTypeTestRun):   full,
				string(models.ObjectTypeComment):   edit,
			},
			string(models.MemberRoleDeveloper): {
				string(models.ObjectTypeProject):   read,
				string(models.ObjectTypeTestCase):  edit,
				string(models.ObjectTypeTestSuite): read,
				string(models.ObjectTypeTestPlan):  read,
				string(models.ObjectTypeTestRun):   edit,
				string(models.ObjectTypeComment):   edit,
			},
		},
	}
}

// Validate checks that every role, object type and action in the matrix is known
func (c *RbacConfig) Validate() error {
	for role, objects := range c.Grants {
		if !models.MemberRole(role).IsValid() {
			return fmt.Errorf("unknown role %q", role)
		}
		for objectType, actions := range objects {
			if !models.ObjectType(objectType).IsValid() {
				return fmt.Errorf("unknown object type %q for role %q", objectType, role)
			}
			for _, action := range actions {
				if !models.RbacAction(action).IsValid() {
					return fmt.Errorf("unknown action %q for %s/%s", action, role, objectType)
				}
			}
		}
	}
	return nil
}

// Permissions expands the matrix into grant rows for one organization
func (c *RbacConfig) Permissions(orgID uuid.UUID) []models.RbacPermission {
	var perms []models.RbacPermission
	for role, objects := range c.Grants {
		for objectType, actions := range objects {
			for _, action := range actions {
				perms = append(perms, models.RbacPermission{
					OrganizationID: orgID,
					Role:           models.MemberRole(role),
					ObjectType:     models.ObjectType(objectType),
					Action:         models.RbacAction(action),
				})
			}
		}
	}
	return perms
}
