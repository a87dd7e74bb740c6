// Package sections holds the ordered About page section list edited by admins.
package sections

import (
	"errors"
	"sort"

	"dharmachain/models"

	"github.com/google/uuid"
)

// ErrSectionNotFound is returned by Update when no section has the given id.
var ErrSectionNotFound = errors.New("section not found")

// List is an ordered collection of sections. After Remove, MoveUp and MoveDown the
// order fields are exactly 0..n-1. It is not safe for concurrent use.
type List struct {
	sections []models.AboutSection
	newID    func() string
}

// New builds a list from stored sections, sorted by their order field.
// Sections sharing an order value keep their incoming sequence.
func New(sections []models.AboutSection) *List {
	l := &List{
		sections: make([]models.AboutSection, len(sections)),
		newID:    defaultID,
	}
	copy(l.sections, sections)
	sort.SliceStable(l.sections, func(i, j int) bool {
		return l.sections[i].Order < l.sections[j].Order
	})
	return l
}

func defaultID() string {
	return "section-" + uuid.NewString()
}

// WithIDGenerator replaces the id source used by Insert.
func (l *List) WithIDGenerator(gen func() string) *List {
	if gen != nil {
		l.newID = gen
	}
	return l
}

func (l *List) Len() int {
	return len(l.sections)
}

func (l *List) indexOf(id string) int {
	for i := range l.sections {
		if l.sections[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns a copy of the section with the given id.
func (l *List) Get(id string) (models.AboutSection, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return models.AboutSection{}, false
	}
	return l.sections[i], true
}

// Insert appends an empty section. Empty heading and content are legal until save.
func (l *List) Insert() models.AboutSection {
	s := models.AboutSection{
		ID:    l.newID(),
		Order: len(l.sections),
	}
	l.sections = append(l.sections, s)
	return s
}

// Update merges the non-nil fields of patch into the section with the given id.
func (l *List) Update(id string, patch models.SectionPatch) (models.AboutSection, error) {
	i := l.indexOf(id)
	if i < 0 {
		return models.AboutSection{}, ErrSectionNotFound
	}
	s := &l.sections[i]
	if patch.Heading != nil {
		s.Heading = *patch.Heading
	}
	if patch.Content != nil {
		s.Content = *patch.Content
	}
	if patch.ClearImage {
		s.Image = ""
	} else if patch.Image != nil {
		s.Image = *patch.Image
	}
	return *s, nil
}

// Remove deletes the section and reindexes the rest. It reports whether anything was removed.
func (l *List) Remove(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.sections = append(l.sections[:i], l.sections[i+1:]...)
	l.reindex()
	return true
}

// MoveUp swaps the section with its predecessor. The first section does not move.
func (l *List) MoveUp(id string) bool {
	i := l.indexOf(id)
	if i <= 0 {
		return false
	}
	l.swap(i, i-1)
	return true
}

// MoveDown swaps the section with its successor. The last section does not move.
func (l *List) MoveDown(id string) bool {
	i := l.indexOf(id)
	if i < 0 || i == len(l.sections)-1 {
		return false
	}
	l.swap(i, i+1)
	return true
}

func (l *List) swap(i, j int) {
	l.sections[i], l.sections[j] = l.sections[j], l.sections[i]
	l.reindex()
}

func (l *List) reindex() {
	for i := range l.sections {
		l.sections[i].Order = i
	}
}

// Snapshot returns a copy of the sections in display order.
func (l *List) Snapshot() []models.AboutSection {
	out := make([]models.AboutSection, len(l.sections))
	copy(out, l.sections)
	return out
}
