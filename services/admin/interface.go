// Package admin serves the read-only admin dashboard screens.
package admin

import (
	"context"

	"dharmachain/models"
)

type AdminService interface {
	Dashboard(session *models.AdminSession) models.DashboardView
	Members(ctx context.Context) models.MembersView
	Documentation(ctx context.Context) models.DocumentationView
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	docs *DocsRenderer
}

func NewAdminService(docs *DocsRenderer) *DefaultAdminService {
	return &DefaultAdminService{docs: docs}
}

func (a *DefaultAdminService) Dashboard(session *models.AdminSession) models.DashboardView {
	view := models.DashboardView{
		Title:      "Welcome to the Admin Dashboard",
		Navigation: models.DashboardNav,
	}
	if session != nil {
		view.Email = session.Email
		view.Name = session.Name
	}
	return view
}

// Members returns an empty list until membership signup is built.
func (a *DefaultAdminService) Members(ctx context.Context) models.MembersView {
	return models.MembersView{
		Members: []models.Member{},
		Notice:  "Membership management will be available once members can sign up.",
	}
}

func (a *DefaultAdminService) Documentation(ctx context.Context) models.DocumentationView {
	return a.docs.Render()
}
