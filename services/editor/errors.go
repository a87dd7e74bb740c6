package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrUploadInProgress is returned when a section already has an upload running.
	ErrUploadInProgress = errors.New("an image upload is already in progress for this section")
	// ErrUploadsDisabled is returned when no image backend is configured.
	ErrUploadsDisabled = errors.New("image uploads are not configured")
	// ErrUnknownDirection is returned by MoveSection for anything but up or down.
	ErrUnknownDirection = errors.New("direction must be up or down")
	// ErrStaleDraft is returned by Save when the draft was built without the stored page.
	ErrStaleDraft = errors.New("the saved About page could not be read; reload before saving")
	// ErrMainHeadingRequired is returned by Save for a blank main heading.
	ErrMainHeadingRequired = errors.New("main heading is required")
)

// UploadError reports a failed image upload for one section.
type UploadError struct {
	SectionID string
	Err       error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("image upload for section %s failed: %v", e.SectionID, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
