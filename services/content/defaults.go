package content

import "dharmachain/models"

const (
	DefaultMainHeading     = "About DharmaChain"
	DefaultMainDescription = "Learn more about our mission and impact."
	DefaultLocationLink    = "https://www.google.com/maps"

	legacySectionID = "legacy-section"
)

// DefaultContent is served while the About document has never been written.
func DefaultContent() models.AboutContent {
	return models.AboutContent{
		MainHeading:     DefaultMainHeading,
		MainDescription: DefaultMainDescription,
		LocationLink:    DefaultLocationLink,
		Sections:        defaultSections(),
	}
}

func defaultSections() []models.AboutSection {
	return []models.AboutSection{
		{
			ID:      "main-section",
			Heading: "Our Mission",
			Content: "DharmaChain was founded on the principles of selfless service and compassion. We believe in creating a transparent and direct line between donors and beneficiaries, ensuring that every contribution makes a meaningful impact. Our team is driven by a shared vision of a world where everyone has the opportunity to live a life of dignity and hope.",
			Order:   0,
		},
		{
			ID:      "our-approach",
			Heading: "Our Approach",
			Content: "We focus on transparency, accountability, and direct impact. Every donation is tracked and reported, ensuring that our supporters can see exactly how their contributions are making a difference in the lives of those we serve.",
			Order:   1,
		},
	}
}

func orDefault(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
