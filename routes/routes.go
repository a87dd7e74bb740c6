package routes

import (
	"net/http"
	"time"

	"dharmachain/handlers"
	"dharmachain/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the endpoints used by the public site.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	if hb.RateLimit != nil {
		api.Use(hb.RateLimit)
	}
	{
		api.GET("/about", hb.AboutHandler.GetAboutHandler)
		api.GET("/causes", hb.CauseHandler.PublicCausesHandler)
		api.GET("/donations/presets", hb.DonationHandler.PresetsHandler)
		api.POST("/donations", hb.DonationHandler.DonateHandler)
	}
}

// RegisterLoginRoutes registers the sign-in flow. These routes are always reachable.
func RegisterLoginRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	login := r.Group("/admin")
	{
		login.GET("", hb.AuthHandler.LoginPageHandler)
		login.GET("/login", hb.AuthHandler.LoginHandler)
		login.GET("/callback", hb.AuthHandler.CallbackHandler)
		login.POST("/logout", hb.AuthHandler.LogoutHandler)
	}
}

// RegisterDashboardRoutes sets up the admin screens behind the guard.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	dashboard := r.Group("/admin/dashboard")
	{
		dashboard.Use(hb.AdminGuard)
		dashboard.GET("", hb.AdminHandler.DashboardHandler)
		dashboard.GET("/members", hb.AdminHandler.MembersHandler)
		dashboard.GET("/documentation", hb.AdminHandler.DocumentationHandler)
		dashboard.POST("/appeals", hb.AppealHandler.GenerateAppealHandler)

		donations := dashboard.Group("/donations")
		donations.GET("", hb.CauseHandler.ListCategoriesHandler)
		donations.POST("", hb.CauseHandler.CreateCategoryHandler)
		donations.PUT("/:id", hb.CauseHandler.UpdateCategoryHandler)
		donations.DELETE("/:id", hb.CauseHandler.DeleteCategoryHandler)

		about := dashboard.Group("/about")
		about.GET("", hb.AboutHandler.GetDraftHandler)
		about.PATCH("", hb.AboutHandler.UpdateMainHandler)
		about.POST("/reload", hb.AboutHandler.ReloadDraftHandler)
		about.POST("/save", hb.AboutHandler.SaveDraftHandler)
		about.POST("/sections", hb.AboutHandler.InsertSectionHandler)
		about.PATCH("/sections/:id", hb.AboutHandler.UpdateSectionHandler)
		about.DELETE("/sections/:id", hb.AboutHandler.RemoveSectionHandler)
		about.POST("/sections/:id/move", hb.AboutHandler.MoveSectionHandler)
		about.POST("/sections/:id/image", hb.AboutHandler.UploadSectionImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": http.StatusText(code), "message": "Hi, I'm DharmaChain", "health": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterLoginRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}
