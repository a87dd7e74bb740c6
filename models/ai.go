package models

// AppealRequest is the payload for /admin/dashboard/appeals.
type AppealRequest struct {
	Category string `json:"category"` // donation category, e.g. "Orphanage"
	Priority string `json:"priority"` // the fundraising priority for that category
}

// AppealResponse carries the suggested wording for a donation appeal.
type AppealResponse struct {
	AppealText string `json:"appealText"`
	Cached     bool   `json:"cached"`
}
