package models

import "time"

// Identity is what the identity provider asserts after a successful code exchange.
type Identity struct {
	Provider      string `json:"provider"`
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name,omitempty"`
}

// AdminSession is the content of a signed session token.
// IsAdmin is fixed when the token is issued and kept for the token's lifetime.
type AdminSession struct {
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NavItem is a dashboard navigation entry.
type NavItem struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// DashboardNav lists the admin screens.
var DashboardNav = []NavItem{
	{Href: "/admin/dashboard", Label: "Dashboard"},
	{Href: "/admin/dashboard/donations", Label: "Donations"},
	{Href: "/admin/dashboard/about", Label: "About Section"},
	{Href: "/admin/dashboard/members", Label: "Members"},
	{Href: "/admin/dashboard/documentation", Label: "Documentation"},
}

// Member is a site member. The list is a placeholder until membership signup exists.
type Member struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
}

// DashboardView is the landing payload of the admin dashboard.
type DashboardView struct {
	Title      string    `json:"title"`
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	Navigation []NavItem `json:"navigation"`
}

// MembersView is the members screen payload.
type MembersView struct {
	Members []Member `json:"members"`
	Notice  string   `json:"notice"`
}

// DocumentationView carries the README source and its rendered HTML.
type DocumentationView struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}
