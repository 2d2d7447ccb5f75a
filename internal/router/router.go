package router

import (
	"time"

	"AIGov_Community/internal/config"
	"AIGov_Community/internal/handler"
	"AIGov_Community/internal/middleware"
	"AIGov_Community/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userSvc := service.NewUserService(db)
	categorySvc := service.NewCategoryService(db)
	eventSvc := service.NewEventService(db)
	teamSvc := service.NewTeamService(db)
	resourceSvc := service.NewResourceService(db, cfg.UploadDir)
	questionSvc := service.NewQuestionService(db)
	productSvc := service.NewProductService(db)
	playbookSvc := service.NewPlaybookService(db, cfg.UploadDir)

	auth := handler.NewAuthHandler(userSvc)
	user := handler.NewUserHandler(userSvc, questionSvc)
	admin := handler.NewAdminHandler(userSvc)
	category := handler.NewCategoryHandler(categorySvc)
	event := handler.NewEventHandler(eventSvc)
	team := handler.NewTeamHandler(teamSvc)
	resource := handler.NewResourceHandler(resourceSvc, cfg.UploadDir)
	question := handler.NewQuestionHandler(questionSvc)
	product := handler.NewProductHandler(productSvc)
	playbook := handler.NewPlaybookHandler(playbookSvc, cfg.UploadDir)

	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(rate.Limit(50), 200))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/me", middleware.AuthRequired(), auth.Me)
	}

	userGroup := api.Group("/users")
	{
		me := userGroup.Group("/me", middleware.AuthRequired())
		{
			me.GET("/questions", user.MyQuestions)
			me.GET("/answers", user.MyAnswers)
			me.GET("/profile", user.MyProfile)
			me.PUT("/profile", user.UpdateMyProfile)
		}

		adminOnly := userGroup.Group("", middleware.AuthRequired(), middleware.AdminOnly())
		{
			adminOnly.GET("", user.List)
			adminOnly.PATCH("/:id/role", user.ChangeRole)
			adminOnly.PATCH("/:id/approval_status", user.SetApprovalStatus)
			adminOnly.PATCH("/:id/ban", user.SetBan)
			adminOnly.DELETE("/:id", user.Delete)
		}
	}

	adminGroup := api.Group("/admin", middleware.AuthRequired(), middleware.AdminOnly())
	{
		adminGroup.GET("/users", user.List)
		adminGroup.POST("/users", admin.CreateUser)
		adminGroup.PATCH("/users/:id/role", user.ChangeRole)
		adminGroup.PATCH("/users/:id/ban", user.SetBan)
		adminGroup.DELETE("/users/:id", user.Delete)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", category.List)
		categoryGroup.POST("", middleware.AuthRequired(), middleware.AdminOnly(), category.Create)
		categoryGroup.DELETE("/:id", middleware.AuthRequired(), middleware.AdminOnly(), category.Delete)
	}

	eventGroup := api.Group("/events")
	{
		eventGroup.GET("", event.List)
		eventGroup.POST("", middleware.AuthRequired(), middleware.AdminOnly(), event.Create)
		eventGroup.PUT("/:id", middleware.AuthRequired(), middleware.AdminOnly(), event.Update)
		eventGroup.DELETE("/:id", middleware.AuthRequired(), middleware.AdminOnly(), event.Delete)
	}

	teamGroup := api.Group("/team")
	{
		teamGroup.GET("", team.List)
		teamGroup.POST("", middleware.AuthRequired(), middleware.AdminOnly(), team.Create)
		teamGroup.PUT("/:id", middleware.AuthRequired(), middleware.AdminOnly(), team.Update)
		teamGroup.DELETE("/:id", middleware.AuthRequired(), middleware.AdminOnly(), team.Delete)
	}

	resourceGroup := api.Group("/resources")
	{
		resourceGroup.GET("", middleware.AuthOptional(), resource.List)
		resourceGroup.GET("/:id", middleware.AuthOptional(), resource.Get)
		resourceGroup.POST("/:id/download", middleware.AuthOptional(), resource.Download)
		resourceGroup.POST("", middleware.AuthRequired(), resource.Create)
		resourceGroup.PUT("/:id", middleware.AuthRequired(), middleware.AdminOnly(), resource.Update)
		resourceGroup.PATCH("/:id/approve", middleware.AuthRequired(), middleware.AdminOnly(), resource.Approve)
		resourceGroup.PATCH("/:id/reject", middleware.AuthRequired(), middleware.AdminOnly(), resource.Reject)
		resourceGroup.DELETE("/:id", middleware.AuthRequired(), middleware.AdminOnly(), resource.Delete)
	}

	questionGroup := api.Group("/questions")
	{
		questionGroup.GET("", question.List)
		questionGroup.GET("/search", question.Search)
		questionGroup.GET("/:id", question.Get)
		questionGroup.POST("", middleware.AuthOptional(), question.Ask)
		questionGroup.DELETE("/:id", middleware.AuthRequired(), question.Delete)
		questionGroup.PATCH("/:id/status", middleware.AuthRequired(), middleware.AdminOnly(), question.SetStatus)
		questionGroup.GET("/:id/answers", question.Answers)
		questionGroup.POST("/:id/answers", middleware.AuthRequired(), question.AddAnswer)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("", product.List)
		productGroup.GET("/:id", product.Get)
		productGroup.GET("/:id/reviews", product.Reviews)
		productGroup.POST("", middleware.AuthRequired(), middleware.AdminOnly(), product.Create)
		productGroup.DELETE("/:id", middleware.AuthRequired(), middleware.AdminOnly(), product.Delete)
		productGroup.POST("/:id/reviews", middleware.AuthRequired(), product.SubmitReview)
	}

	playbookGroup := api.Group("/playbooks")
	{
		playbookGroup.GET("", playbook.List)
		playbookGroup.GET("/:id/download", middleware.AuthRequired(), playbook.Download)
		playbookGroup.POST("", middleware.AuthRequired(), middleware.AdminOnly(), playbook.Create)
		playbookGroup.DELETE("/:id", middleware.AuthRequired(), middleware.AdminOnly(), playbook.Delete)
	}

	return r
}
