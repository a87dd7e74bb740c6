package editor

import (
	"sort"

	"dharmachain/models"
	"dharmachain/services/sections"
)

// Draft is one admin's unsaved copy of the About page.
type Draft struct {
	MainHeading     string
	MainDescription string
	LocationLink    string
	Sections        *sections.List
	uploading       map[string]struct{}
	// stale marks a draft built from defaults because the stored page could not be read.
	stale  bool
	edited bool
}

// refreshable reports whether the draft should be rebuilt from the store on next use.
func (d *Draft) refreshable() bool {
	return d.stale && !d.edited
}

func newDraft(c models.AboutContent, newID func() string) *Draft {
	return &Draft{
		MainHeading:     c.MainHeading,
		MainDescription: c.MainDescription,
		LocationLink:    c.LocationLink,
		Sections:        sections.New(c.Sections).WithIDGenerator(newID),
		uploading:       make(map[string]struct{}),
	}
}

// DraftView is the JSON form of a draft returned to the admin screen.
type DraftView struct {
	MainHeading     string                `json:"mainHeading"`
	MainDescription string                `json:"mainDescription"`
	LocationLink    string                `json:"locationLink"`
	Sections        []models.AboutSection `json:"sections"`
	Uploading       []string              `json:"uploading"`
	Stale           bool                  `json:"stale,omitempty"`
}

func (d *Draft) view() DraftView {
	uploading := make([]string, 0, len(d.uploading))
	for id := range d.uploading {
		uploading = append(uploading, id)
	}
	sort.Strings(uploading)
	return DraftView{
		MainHeading:     d.MainHeading,
		MainDescription: d.MainDescription,
		LocationLink:    d.LocationLink,
		Sections:        d.Sections.Snapshot(),
		Uploading:       uploading,
		Stale:           d.stale,
	}
}

// patch captures the whole draft as a merge-write.
func (d *Draft) patch() models.AboutContentPatch {
	heading := d.MainHeading
	description := d.MainDescription
	link := d.LocationLink
	snapshot := d.Sections.Snapshot()
	return models.AboutContentPatch{
		MainHeading:     &heading,
		MainDescription: &description,
		LocationLink:    &link,
		Sections:        &snapshot,
	}
}
