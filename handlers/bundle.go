package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AuthHandler     *AuthHandler
	AboutHandler    *AboutHandler
	DonationHandler *DonationHandler
	CauseHandler    *CauseHandler
	AppealHandler   *AppealHandler
	AdminHandler    *AdminHandler

	// AdminGuard protects /admin/dashboard and below.
	AdminGuard gin.HandlerFunc
	// RateLimit is applied to the public API.
	RateLimit gin.HandlerFunc
}
