package handlers

import (
	"net/http"

	"dharmachain/middleware"
	"dharmachain/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the read-only dashboard screens.
type AdminHandler struct {
	AdminService admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{AdminService: svc}
}

func (ah *AdminHandler) DashboardHandler(c *gin.Context) {
	session, _ := middleware.CurrentAdmin(c)
	c.JSON(http.StatusOK, ah.AdminService.Dashboard(session))
}

func (ah *AdminHandler) MembersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ah.AdminService.Members(c.Request.Context()))
}

func (ah *AdminHandler) DocumentationHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ah.AdminService.Documentation(c.Request.Context()))
}
