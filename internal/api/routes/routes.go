package routes

import (
	"log"

	"testtrack-backend/internal/api/handlers"
	"testtrack-backend/internal/api/middleware"
	"testtrack-backend/internal/auth"
	"testtrack-backend/internal/config"
	"testtrack-backend/internal/ratelimit"
	"testtrack-backend/internal/repository"
	"testtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validate := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewOrganizationMemberRepository(db)
	rbacRepo := repository.NewRbacPermissionRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	caseRepo := repository.NewTestCaseRepository(db)
	runRepo := repository.NewTestRunRepository(db)
	suiteRepo := repository.NewTestSuiteRepository(db)
	planRepo := repository.NewTestPlanRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	// RBAC grant matrix used to seed new organizations
	rbacConfig, err := auth.LoadRbacConfig(cfg.RbacConfigPath)
	if err != nil {
		log.Printf("Warning: failed to load rbac config, using defaults: %v", err)
		rbacConfig = auth.DefaultRbacConfig()
	}

	// Services
	permService := service.NewPermissionService(memberRepo, rbacRepo)
	activityService := service.NewActivityService(activityRepo, permService)
	orgService := service.NewOrganizationService(orgRepo, memberRepo, rbacRepo, permService, activityService,
		rbacConfig, validate, cfg.DefaultMaxProjects, cfg.DefaultMaxTestCases)
	memberService := service.NewMemberService(memberRepo, userRepo, permService, activityService, validate)
	projectService := service.NewProjectService(projectRepo, orgRepo, permService, activityService, validate)
	caseService := service.NewTestCaseService(caseRepo, projectRepo, orgRepo, permService, activityService, validate)
	runService := service.NewTestRunService(runRepo, caseRepo, projectRepo, permService, activityService, validate)
	suiteService := service.NewTestSuiteService(suiteRepo, caseRepo, projectRepo, permService, activityService, validate)
	planService := service.NewTestPlanService(planRepo, projectRepo, permService, activityService, validate)
	commentService := service.NewCommentService(commentRepo, projectRepo, caseRepo, runRepo, suiteRepo, planRepo,
		permService, activityService, validate)
	userService := service.NewUserService(userRepo)

	authService := auth.NewAuthService(cfg.JWTSecret, userRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	limiter := ratelimit.New(cfg.RateLimitEnabled)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	orgHandler := handlers.NewOrganizationHandler(orgService)
	memberHandler := handlers.NewMemberHandler(memberService)
	projectHandler := handlers.NewProjectHandler(projectService)
	caseHandler := handlers.NewTestCaseHandler(caseService)
	runHandler := handlers.NewTestRunHandler(runService)
	suiteHandler := handlers.NewTestSuiteHandler(suiteService)
	planHandler := handlers.NewTestPlanHandler(planService)
	commentHandler := handlers.NewCommentHandler(commentService)
	activityHandler := handlers.NewActivityHandler(activityService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes, rate limited per client IP
	authGroup := router.Group("/api/auth")
	authGroup.Use(middleware.RateLimit(limiter, "auth", cfg.RateLimitMax, cfg.RateLimitWindow))
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
	}

	// Authenticated API
	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		api.GET("/auth/me", authHandler.Me)
		api.POST("/auth/logout", authHandler.Logout)

		api.POST("/organizations", orgHandler.CreateOrganization)
		api.GET("/organizations", orgHandler.ListOrganizations)
		api.GET("/organizations/:id", orgHandler.GetOrganization)
		api.PUT("/organizations/:id", orgHandler.UpdateOrganization)

		api.POST("/organizations/:id/members", memberHandler.AddMember)
		api.GET("/organizations/:id/members", memberHandler.ListMembers)
		api.PUT("/organizations/:id/members/:memberId", memberHandler.UpdateMemberRole)
		api.DELETE("/organizations/:id/members/:memberId", memberHandler.RemoveMember)

		api.GET("/organizations/:id/activity", activityHandler.ListActivity)

		api.POST("/organizations/:id/projects", projectHandler.CreateProject)
		api.GET("/organizations/:id/projects", projectHandler.ListProjects)
		api.GET("/projects/:id", projectHandler.GetProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)

		api.POST("/projects/:id/test-cases", caseHandler.CreateTestCase)
		api.GET("/projects/:id/test-cases", caseHandler.ListTestCases)
		api.GET("/test-cases/:id", caseHandler.GetTestCase)
		api.PUT("/test-cases/:id", caseHandler.UpdateTestCase)
		api.DELETE("/test-cases/:id", caseHandler.DeleteTestCase)

		api.POST("/test-cases/:id/runs", runHandler.CreateTestRun)
		api.GET("/test-cases/:id/runs", runHandler.ListTestRuns)
		api.PUT("/test-runs/:id", runHandler.UpdateTestRun)
		api.DELETE("/test-runs/:id", runHandler.DeleteTestRun)

		api.POST("/projects/:id/test-suites", suiteHandler.CreateTestSuite)
		api.GET("/projects/:id/test-suites", suiteHandler.ListTestSuites)
		api.GET("/test-suites/:id", suiteHandler.GetTestSuite)
		api.PUT("/test-suites/:id", suiteHandler.UpdateTestSuite)
		api.DELETE("/test-suites/:id", suiteHandler.DeleteTestSuite)
		api.POST("/test-suites/:id/cases/:caseId", suiteHandler.AddSuiteCase)
		api.GET("/test-suites/:id/cases", suiteHandler.ListSuiteCases)
		api.DELETE("/test-suites/:id/cases/:caseId", suiteHandler.RemoveSuiteCase)

		api.POST("/projects/:id/test-plans", planHandler.CreateTestPlan)
		api.GET("/projects/:id/test-plans", planHandler.ListTestPlans)
		api.GET("/test-plans/:id", planHandler.GetTestPlan)
		api.PUT("/test-plans/:id", planHandler.UpdateTestPlan)
		api.DELETE("/test-plans/:id", planHandler.DeleteTestPlan)

		api.POST("/comments", commentHandler.CreateComment)
		api.GET("/comments", commentHandler.ListComments)
		api.DELETE("/comments/:id", commentHandler.DeleteComment)

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.GET("/users", userHandler.ListUsers)
			admin.PUT("/users/:id/status", userHandler.SetUserStatus)
		}
	}

	return router
}
