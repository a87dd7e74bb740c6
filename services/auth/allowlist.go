package auth

import "strings"

// AllowList is the fixed set of admin emails. Membership is case-sensitive.
type AllowList struct {
	emails map[string]struct{}
}

// ParseAllowList reads a comma-separated list, trimming whitespace and dropping empty entries.
func ParseAllowList(raw string) AllowList {
	list := AllowList{emails: make(map[string]struct{})}
	for _, e := range strings.Split(raw, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		list.emails[e] = struct{}{}
	}
	return list
}

// NewAllowList builds a list from explicit entries.
func NewAllowList(emails ...string) AllowList {
	return ParseAllowList(strings.Join(emails, ","))
}

func (a AllowList) Contains(email string) bool {
	if email == "" {
		return false
	}
	_, ok := a.emails[email]
	return ok
}

func (a AllowList) Len() int {
	return len(a.emails)
}
