package content

import (
	"sort"

	"dharmachain/models"
)

// storedShape is one of the document layouts found in the store.
type storedShape interface {
	toContent() models.AboutContent
}

// LegacyFlatContent is the pre-sections layout: a single heading and text.
type LegacyFlatContent struct {
	Heading         string
	Text            string
	MainDescription *string
	LocationLink    *string
}

func (l LegacyFlatContent) toContent() models.AboutContent {
	return models.AboutContent{
		MainHeading:     l.Heading,
		MainDescription: orDefault(l.MainDescription, DefaultMainDescription),
		LocationLink:    orDefault(l.LocationLink, DefaultLocationLink),
		Sections: []models.AboutSection{
			{ID: legacySectionID, Heading: l.Heading, Content: l.Text, Order: 0},
		},
	}
}

// SectionedContent is the current layout. Sections is nil when the field is absent.
type SectionedContent struct {
	MainHeading     *string
	MainDescription *string
	LocationLink    *string
	Sections        []models.AboutSection
	HasSections     bool
}

func (s SectionedContent) toContent() models.AboutContent {
	sections := defaultSections()
	if s.HasSections {
		sections = make([]models.AboutSection, len(s.Sections))
		copy(sections, s.Sections)
		// Ties keep stored sequence; there is no secondary key.
		sort.SliceStable(sections, func(i, j int) bool {
			return sections[i].Order < sections[j].Order
		})
	}
	return models.AboutContent{
		MainHeading:     orDefault(s.MainHeading, DefaultMainHeading),
		MainDescription: orDefault(s.MainDescription, DefaultMainDescription),
		LocationLink:    orDefault(s.LocationLink, DefaultLocationLink),
		Sections:        sections,
	}
}

// resolveDocument decides once, at load time, which layout a stored document uses.
func resolveDocument(doc *models.AboutDocument) storedShape {
	if !doc.HasSections && nonEmpty(doc.Heading) && nonEmpty(doc.Text) {
		return LegacyFlatContent{
			Heading:         *doc.Heading,
			Text:            *doc.Text,
			MainDescription: doc.MainDescription,
			LocationLink:    doc.LocationLink,
		}
	}
	return SectionedContent{
		MainHeading:     doc.MainHeading,
		MainDescription: doc.MainDescription,
		LocationLink:    doc.LocationLink,
		Sections:        doc.Sections,
		HasSections:     doc.HasSections,
	}
}

func nonEmpty(v *string) bool {
	return v != nil && *v != ""
}
