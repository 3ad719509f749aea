package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/kerem/hostelhub/internal/app/controllers"
	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/middleware"
)

// SetupRouter configures all application routes.
//
// The public surface is read-only marketing content plus the intake
// forms; everything that mutates state sits behind JWT auth and a
// role gate. The page cache is shared between the public content
// groups and their staff management groups: an admin edit flushes the
// cached public pages, and a public submission flushes the cached
// staff lists.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	hostelController *controllers.HostelController,
	contentController *controllers.ContentController,
	singletonController *controllers.SingletonController,
	facilityController *controllers.FacilityController,
	intakeController *controllers.IntakeController,
	newsletterController *controllers.NewsletterController,
	mediaController *controllers.MediaController,
	authMiddleware *middleware.AuthMiddleware,
	pageCache *cache.Cache,
	cacheTTL time.Duration,
) {
	v1 := router.Group("/api/v1")

	cached := middleware.CacheResponses(pageCache, cacheTTL)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		// Registration flushes the page cache: new accounts show up in
		// the cached dashboard role counts.
		auth.POST("/register", cached, authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Public content routes (cached) ---
	content := v1.Group("/content", cached)
	{
		content.GET("/hero-slides", contentController.ListHeroSlides)
		content.GET("/testimonials", contentController.ListTestimonials)
		content.GET("/team-members", contentController.ListTeamMembers)
		content.GET("/welcome-sections", contentController.ListWelcomeSections)
		content.GET("/features", contentController.ListFeatures)
		content.GET("/tickers", contentController.ListTickers)
		content.GET("/leadership", contentController.ListLeadershipMembers)
		content.GET("/departments", contentController.ListDepartments)

		content.GET("/company-overview", singletonController.GetCompanyOverview)
		content.GET("/contact-details", singletonController.GetContactDetails)
		content.GET("/membership-level", singletonController.GetMembershipLevel)
		content.GET("/logos", singletonController.GetLogo)
	}

	// Public hostel and facility directory (cached)
	v1.GET("/hostels", cached, hostelController.ListHostels)
	v1.GET("/hostels/:id", cached, hostelController.GetHostel)
	v1.GET("/facilities", cached, facilityController.ListFacilities)
	v1.GET("/facilities/:id", cached, facilityController.GetFacility)

	// --- Public intake forms ---
	// These also run through the page cache middleware because the
	// staff lists they feed are cached behind it.
	v1.POST("/complaints", cached, intakeController.FileComplaint)
	v1.POST("/applications", cached, intakeController.SubmitApplication)
	v1.POST("/newsletter/subscribe", cached, newsletterController.Subscribe)
	v1.POST("/newsletter/unsubscribe", cached, newsletterController.Unsubscribe)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.POST("/auth/logout", authController.Logout)

		// Residents file room requests and damage reports themselves.
		// Both go through the page cache so the staff queues refresh.
		authenticated.POST("/room-requests", cached, hostelController.RequestRoom)
		authenticated.POST("/facilities/:id/damage-reports", cached, facilityController.ReportDamage)
	}

	// --- Staff management routes ---
	// The page cache middleware sits after the role gate so successful
	// mutations flush the cached public pages.
	staff := v1.Group("/manage")
	staff.Use(authMiddleware.JWTAuth(), authMiddleware.RequireRole(models.RoleStaff), cached)
	{
		staff.GET("/dashboard", hostelController.GetDashboardStats)
		staff.GET("/bed-stats", hostelController.GetBedStats)

		hostels := staff.Group("/hostels")
		{
			hostels.POST("", hostelController.CreateHostel)
			hostels.PUT("/:id", hostelController.UpdateHostel)
			hostels.DELETE("/:id", hostelController.DeleteHostel)
			hostels.POST("/:id/rooms", hostelController.CreateRoom)
		}

		rooms := staff.Group("/rooms")
		{
			rooms.GET("/:id", hostelController.GetRoom)
			rooms.PUT("/:id", hostelController.UpdateRoom)
			rooms.DELETE("/:id", hostelController.DeleteRoom)
			rooms.DELETE("/:id/occupants/:userId", hostelController.VacateRoom)
		}

		requests := staff.Group("/room-requests")
		{
			requests.GET("", hostelController.ListRoomRequests)
			requests.GET("/:id", hostelController.GetRoomRequest)
			requests.POST("/:id/approve", hostelController.ApproveRoomRequest)
			requests.POST("/:id/decline", hostelController.DeclineRoomRequest)
		}

		registerContentGroup(staff, contentController)

		singletons := staff.Group("/content")
		{
			singletons.PUT("/company-overview", singletonController.UpsertCompanyOverview)
			singletons.PUT("/contact-details", singletonController.UpsertContactDetails)
			singletons.PUT("/membership-level", singletonController.UpsertMembershipLevel)
			singletons.PUT("/logos", singletonController.UpsertLogo)
		}

		facilities := staff.Group("/facilities")
		{
			facilities.POST("", facilityController.CreateFacility)
			facilities.PUT("/:id", facilityController.UpdateFacility)
			facilities.DELETE("/:id", facilityController.DeleteFacility)
			facilities.GET("/:id/damage-reports", facilityController.ListDamageReports)
			facilities.PATCH("/damage-reports/:reportId", facilityController.UpdateRepairStatus)
		}

		complaints := staff.Group("/complaints")
		{
			complaints.GET("", intakeController.ListComplaints)
			complaints.GET("/:id", intakeController.GetComplaint)
			complaints.PATCH("/:id/status", intakeController.UpdateComplaintStatus)
			complaints.DELETE("/:id", intakeController.DeleteComplaint)
		}

		applications := staff.Group("/applications")
		{
			applications.GET("", intakeController.ListApplications)
			applications.GET("/:id", intakeController.GetApplication)
			applications.PATCH("/:id/status", intakeController.ResolveApplication)
			applications.DELETE("/:id", intakeController.DeleteApplication)
		}

		media := staff.Group("/media")
		{
			media.POST("", mediaController.Upload)
			media.GET("", mediaController.ListAssets)
			media.GET("/:id", mediaController.GetAsset)
			media.DELETE("/:id", mediaController.DeleteAsset)
		}
	}

	// --- Admin-only routes ---
	admin := v1.Group("/manage")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RequireRole(models.RoleAdmin))
	{
		campaigns := admin.Group("/campaigns")
		{
			campaigns.POST("", newsletterController.CreateCampaign)
			campaigns.GET("", newsletterController.ListCampaigns)
			campaigns.GET("/:id", newsletterController.GetCampaign)
			campaigns.PUT("/:id", newsletterController.UpdateCampaign)
			campaigns.DELETE("/:id", newsletterController.DeleteCampaign)
			campaigns.POST("/:id/send", newsletterController.SendCampaign)
		}
	}

	// --- Super-admin-only routes ---
	// User administration sits above the campaign surface; the service
	// layer additionally enforces the strictly-below role ceiling.
	superAdmin := v1.Group("/manage")
	superAdmin.Use(authMiddleware.JWTAuth(), authMiddleware.RequireRole(models.RoleSuperAdmin), cached)
	{
		users := superAdmin.Group("/users")
		{
			users.POST("", userController.CreateUser)
			users.GET("", userController.ListUsers)
			users.GET("/:id", userController.GetUser)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}
	}
}

// registerContentGroup wires the CRUD surface for every content family.
// List routes honor ?includeInactive=true so editors can see hidden
// entries.
func registerContentGroup(staff *gin.RouterGroup, c *controllers.ContentController) {
	content := staff.Group("/content")

	heroSlides := content.Group("/hero-slides")
	{
		heroSlides.GET("", c.ListHeroSlides)
		heroSlides.POST("", c.CreateHeroSlide)
		heroSlides.GET("/:id", c.GetHeroSlide)
		heroSlides.PUT("/:id", c.UpdateHeroSlide)
		heroSlides.DELETE("/:id", c.DeleteHeroSlide)
	}

	testimonials := content.Group("/testimonials")
	{
		testimonials.GET("", c.ListTestimonials)
		testimonials.POST("", c.CreateTestimonial)
		testimonials.GET("/:id", c.GetTestimonial)
		testimonials.PUT("/:id", c.UpdateTestimonial)
		testimonials.DELETE("/:id", c.DeleteTestimonial)
	}

	teamMembers := content.Group("/team-members")
	{
		teamMembers.GET("", c.ListTeamMembers)
		teamMembers.POST("", c.CreateTeamMember)
		teamMembers.GET("/:id", c.GetTeamMember)
		teamMembers.PUT("/:id", c.UpdateTeamMember)
		teamMembers.DELETE("/:id", c.DeleteTeamMember)
	}

	welcomeSections := content.Group("/welcome-sections")
	{
		welcomeSections.GET("", c.ListWelcomeSections)
		welcomeSections.POST("", c.CreateWelcomeSection)
		welcomeSections.GET("/:id", c.GetWelcomeSection)
		welcomeSections.PUT("/:id", c.UpdateWelcomeSection)
		welcomeSections.DELETE("/:id", c.DeleteWelcomeSection)
	}

	features := content.Group("/features")
	{
		features.GET("", c.ListFeatures)
		features.POST("", c.CreateFeature)
		features.GET("/:id", c.GetFeature)
		features.PUT("/:id", c.UpdateFeature)
		features.DELETE("/:id", c.DeleteFeature)
	}

	tickers := content.Group("/tickers")
	{
		tickers.GET("", c.ListTickers)
		tickers.POST("", c.CreateTicker)
		tickers.GET("/:id", c.GetTicker)
		tickers.PUT("/:id", c.UpdateTicker)
		tickers.DELETE("/:id", c.DeleteTicker)
	}

	leadership := content.Group("/leadership")
	{
		leadership.GET("", c.ListLeadershipMembers)
		leadership.POST("", c.CreateLeadershipMember)
		leadership.GET("/:id", c.GetLeadershipMember)
		leadership.PUT("/:id", c.UpdateLeadershipMember)
		leadership.DELETE("/:id", c.DeleteLeadershipMember)
	}

	departments := content.Group("/departments")
	{
		departments.GET("", c.ListDepartments)
		departments.POST("", c.CreateDepartment)
		departments.GET("/:id", c.GetDepartment)
		departments.PUT("/:id", c.UpdateDepartment)
		departments.DELETE("/:id", c.DeleteDepartment)
	}
}
