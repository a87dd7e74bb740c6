package models

// AboutContentCollection and AboutContentKey address the single About page document.
const (
	AboutContentCollection = "about-content"
	AboutContentKey        = "main"
)

// AboutSection is one ordered, independently editable block of the About page.
type AboutSection struct {
	ID      string `json:"id" firestore:"id" bson:"id"`
	Heading string `json:"heading" firestore:"heading" bson:"heading"`
	Content string `json:"content" firestore:"content" bson:"content"`
	Image   string `json:"image,omitempty" firestore:"image,omitempty" bson:"image,omitempty"`
	Order   int    `json:"order" firestore:"order" bson:"order"`
}

// AboutContent is the resolved About page, with defaults already substituted.
type AboutContent struct {
	MainHeading     string         `json:"mainHeading"`
	MainDescription string         `json:"mainDescription"`
	LocationLink    string         `json:"locationLink"`
	Sections        []AboutSection `json:"sections"`
}

// AboutContentPatch carries the fields of a merge-write. Nil fields are left untouched.
type AboutContentPatch struct {
	MainHeading     *string         `json:"mainHeading,omitempty"`
	MainDescription *string         `json:"mainDescription,omitempty"`
	LocationLink    *string         `json:"locationLink,omitempty"`
	Sections        *[]AboutSection `json:"sections,omitempty"`
}

// IsEmpty reports whether the patch would write nothing.
func (p AboutContentPatch) IsEmpty() bool {
	return p.MainHeading == nil && p.MainDescription == nil && p.LocationLink == nil && p.Sections == nil
}

// Fields flattens the patch into document field names, as used by merge-writes.
func (p AboutContentPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.MainHeading != nil {
		fields["mainHeading"] = *p.MainHeading
	}
	if p.MainDescription != nil {
		fields["mainDescription"] = *p.MainDescription
	}
	if p.LocationLink != nil {
		fields["locationLink"] = *p.LocationLink
	}
	if p.Sections != nil {
		sections := make([]AboutSection, len(*p.Sections))
		copy(sections, *p.Sections)
		fields["sections"] = sections
	}
	return fields
}

// AboutDocument is the raw stored shape. Older documents carry Heading/Text instead of Sections.
// HasSections distinguishes an absent sections field from an empty one.
type AboutDocument struct {
	MainHeading     *string        `json:"mainHeading,omitempty" firestore:"mainHeading,omitempty" bson:"mainHeading,omitempty"`
	MainDescription *string        `json:"mainDescription,omitempty" firestore:"mainDescription,omitempty" bson:"mainDescription,omitempty"`
	LocationLink    *string        `json:"locationLink,omitempty" firestore:"locationLink,omitempty" bson:"locationLink,omitempty"`
	Sections        []AboutSection `json:"sections,omitempty" firestore:"sections,omitempty" bson:"sections,omitempty"`
	HasSections     bool           `json:"-" firestore:"-" bson:"-"`

	Heading *string `json:"heading,omitempty" firestore:"heading,omitempty" bson:"heading,omitempty"`
	Text    *string `json:"text,omitempty" firestore:"text,omitempty" bson:"text,omitempty"`
}

// Apply merges a patch into the document in place.
func (d *AboutDocument) Apply(p AboutContentPatch) {
	if p.MainHeading != nil {
		v := *p.MainHeading
		d.MainHeading = &v
	}
	if p.MainDescription != nil {
		v := *p.MainDescription
		d.MainDescription = &v
	}
	if p.LocationLink != nil {
		v := *p.LocationLink
		d.LocationLink = &v
	}
	if p.Sections != nil {
		d.Sections = make([]AboutSection, len(*p.Sections))
		copy(d.Sections, *p.Sections)
		d.HasSections = true
	}
}

// SectionPatch carries partial section edits. ClearImage removes an attached image.
type SectionPatch struct {
	Heading    *string `json:"heading,omitempty"`
	Content    *string `json:"content,omitempty"`
	Image      *string `json:"image,omitempty"`
	ClearImage bool    `json:"clearImage,omitempty"`
}

// MainInfoPatch edits the page-level fields of a draft.
type MainInfoPatch struct {
	MainHeading     *string `json:"mainHeading,omitempty"`
	MainDescription *string `json:"mainDescription,omitempty"`
	LocationLink    *string `json:"locationLink,omitempty"`
}

// ImageFile is an image handed to an uploader.
type ImageFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StringPtr is a small helper for building patches.
func StringPtr(s string) *string {
	return &s
}
