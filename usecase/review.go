package usecase

import (
	"context"
	"errors"
	"log"

	"notebuddy/model"
	"notebuddy/repository"
	"notebuddy/store"
)

var (
	// ErrUploadNotFound means the referenced upload id does not exist.
	ErrUploadNotFound = errors.New("upload not found")
	// ErrAlreadyReviewed means the upload already left the pending state.
	// Status transitions are one-directional, so a second review decision
	// is refused rather than applied.
	ErrAlreadyReviewed = errors.New("upload already reviewed")
)

// ReviewService runs the admin review workflow: promoting an accepted
// upload into the public catalog and awarding Knowledge Points.
type ReviewService struct {
	Uploads      *repository.UploadsRepo
	Notes        *repository.NotesRepo
	Contributors *repository.ContributorsRepo
}

// Accept promotes a pending upload into a Note, marks the upload accepted
// and awards the assigned points to the named contributor, creating the
// contributor on first award. The steps run best-effort sequentially; there
// is no multi-document transaction (see DESIGN.md).
func (s *ReviewService) Accept(ctx context.Context, uploadID string, assignedPoints int, reviewerNote *string) (string, error) {
	upload, err := s.Uploads.Get(ctx, uploadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUploadNotFound
		}
		return "", err
	}
	if upload.Status != model.UploadStatusPending {
		return "", ErrAlreadyReviewed
	}

	note := projectNote(upload)
	created, err := s.Notes.Create(ctx, note)
	if err != nil {
		return "", err
	}

	if err := s.Uploads.MarkAccepted(ctx, uploadID, assignedPoints, reviewerNote); err != nil {
		return "", err
	}

	if upload.ContributorName != "" {
		if err := s.award(ctx, upload.ContributorName, assignedPoints); err != nil {
			// The note is already published and the upload marked; the
			// award is the only step left, so surface the failure.
			log.Printf("Failed to award %d points to %q: %v", assignedPoints, upload.ContributorName, err)
			return "", err
		}
	}

	return created.ID, nil
}

// Reject marks a pending upload rejected, recording the reason as the
// reviewer note.
func (s *ReviewService) Reject(ctx context.Context, uploadID string, reason string) error {
	upload, err := s.Uploads.Get(ctx, uploadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUploadNotFound
		}
		return err
	}
	if upload.Status != model.UploadStatusPending {
		return ErrAlreadyReviewed
	}

	return s.Uploads.MarkRejected(ctx, uploadID, reason)
}

func (s *ReviewService) award(ctx context.Context, name string, points int) error {
	existing, err := s.Contributors.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		_, err := s.Contributors.AdjustPoints(ctx, existing.ID, points)
		return err
	}

	_, err = s.Contributors.Create(ctx, model.Contributor{
		Name:   name,
		Points: points,
		Badges: []string{},
	})
	return err
}

// projectNote copies the descriptive upload fields into a fresh catalog
// entry with zeroed counters.
func projectNote(upload *model.Upload) model.Note {
	alias := upload.ContributorName
	if alias == "" {
		alias = "Admin Upload"
	}

	chapters := upload.Chapters
	if chapters == nil {
		chapters = []string{}
	}

	return model.Note{
		Title:         upload.Title,
		ClassLevel:    upload.ClassLevel,
		College:       upload.College,
		Subject:       upload.Subject,
		Chapters:      chapters,
		Pages:         upload.Pages,
		DriveLink:     upload.DriveLink,
		UploaderAlias: alias,
		ThumbnailURL:  upload.ThumbnailURL,
		Likes:         0,
		Downloads:     0,
		Language:      "en",
	}
}
