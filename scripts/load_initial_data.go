package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/config"
	"testtrack-backend/internal/database"
	"testtrack-backend/internal/database/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo organization with users across every role, one project and a
// few test cases with run history. Safe to re-run: existing rows are reused.

type seedUser struct {
	Email       string
	DisplayName string
	Password    string
	Role        models.MemberRole
	Admin       bool
}

var seedUsers = []seedUser{
	{Email: "manager@demo.test", DisplayName: "Dana Manager", Password: "manager123", Role: models.MemberRoleOrganizationManager, Admin: true},
	{Email: "pm@demo.test", DisplayName: "Pat Project", Password: "pm123456", Role: models.MemberRoleProjectManager},
	{Email: "po@demo.test", DisplayName: "Orin Owner", Password: "po123456", Role: models.MemberRoleProductOwner},
	{Email: "qa@demo.test", DisplayName: "Quinn QA", Password: "qa123456", Role: models.MemberRoleQAEngineer},
	{Email: "dev@demo.test", DisplayName: "Devon Developer", Password: "dev123456", Role: models.MemberRoleDeveloper},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := seed(db, cfg); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println("Initial data loaded")
	os.Exit(0)
}

func seed(db *gorm.DB, cfg *config.Config) error {
	org := models.Organization{
		Name:         "Demo QA Team",
		Description:  "Seeded demo organization",
		MaxProjects:  cfg.DefaultMaxProjects,
		MaxTestCases: cfg.DefaultMaxTestCases,
	}
	if err := db.Where("name = ?", org.Name).FirstOrCreate(&org).Error; err != nil {
		return fmt.Errorf("create organization: %w", err)
	}

	rbacConfig, err := auth.LoadRbacConfig(cfg.RbacConfigPath)
	if err != nil {
		rbacConfig = auth.DefaultRbacConfig()
	}
	for _, perm := range rbacConfig.Permissions(org.ID) {
		p := perm
		err := db.Where("organization_id = ? AND role = ? AND object_type = ? AND action = ?",
			p.OrganizationID, p.Role, p.ObjectType, p.Action).FirstOrCreate(&p).Error
		if err != nil {
			return fmt.Errorf("create rbac grant: %w", err)
		}
	}

	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user := models.User{
			Email:        su.Email,
			DisplayName:  su.DisplayName,
			PasswordHash: string(hash),
			Status:       models.UserStatusActive,
			IsAdmin:      su.Admin,
		}
		if err := db.Where("email = ?", su.Email).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", su.Email, err)
		}

		member := models.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         user.ID,
			Role:           su.Role,
		}
		err = db.Where("organization_id = ? AND user_id = ?", org.ID, user.ID).FirstOrCreate(&member).Error
		if err != nil {
			return fmt.Errorf("create membership for %s: %w", su.Email, err)
		}
	}

	project := models.Project{
		OrganizationID: org.ID,
		Name:           "Checkout Service",
		Description:    "Regression coverage for the checkout flow",
	}
	if err := db.Where("organization_id = ? AND name = ?", org.ID, project.Name).FirstOrCreate(&project).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	var qa models.User
	if err := db.Where("email = ?", "qa@demo.test").First(&qa).Error; err != nil {
		return fmt.Errorf("load qa user: %w", err)
	}

	cases := []models.TestCase{
		{ProjectID: project.ID, Title: "Guest checkout completes", Priority: models.CasePriorityHigh, LastRunStatus: models.RunStatusNotRun},
		{ProjectID: project.ID, Title: "Declined card shows error", Priority: models.CasePriorityCritical, LastRunStatus: models.RunStatusNotRun},
		{ProjectID: project.ID, Title: "Cart survives session expiry", Priority: models.CasePriorityMedium, LastRunStatus: models.RunStatusNotRun},
	}
	for i := range cases {
		tc := &cases[i]
		if err := db.Where("project_id = ? AND title = ?", project.ID, tc.Title).FirstOrCreate(tc).Error; err != nil {
			return fmt.Errorf("create test case: %w", err)
		}
	}

	// One completed run so the demo shows a populated summary
	run := models.TestRun{
		TestCaseID:      cases[0].ID,
		Status:          models.RunStatusPass,
		DurationSeconds: 42,
		Environment:     "staging",
		ExecutedAt:      time.Now().UTC(),
		ExecutedBy:      qa.ID,
	}
	if err := db.Where("test_case_id = ?", cases[0].ID).FirstOrCreate(&run).Error; err != nil {
		return fmt.Errorf("create test run: %w", err)
	}
	err = db.Model(&models.TestCase{}).Where("id = ?", cases[0].ID).
		Updates(map[string]interface{}{"last_run_status": run.Status, "last_run_at": run.ExecutedAt}).Error
	if err != nil {
		return fmt.Errorf("update last run summary: %w", err)
	}

	return nil
}
