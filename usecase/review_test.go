package usecase

import (
	"context"
	"errors"
	"testing"

	"notebuddy/model"
	"notebuddy/repository"
	"notebuddy/store"
)

func newReviewService() (*ReviewService, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return &ReviewService{
		Uploads:      repository.NewUploadsRepo(st),
		Notes:        repository.NewNotesRepo(st),
		Contributors: repository.NewContributorsRepo(st),
	}, st
}

func pendingUpload(contributor string) model.Upload {
	return model.Upload{
		Title:           "Algebra Notes",
		ClassLevel:      "12",
		College:         "LBA",
		Subject:         "Math",
		Chapters:        []string{"Sets", "Functions"},
		DriveLink:       "https://drive.google.com/file/d/abc123/view",
		ContributorName: contributor,
		Status:          model.UploadStatusPending,
	}
}

func TestAcceptPromotesUploadAndAwardsPoints(t *testing.T) {
	svc, _ := newReviewService()
	ctx := context.Background()

	created, err := svc.Uploads.Create(ctx, pendingUpload("Asha"))
	if err != nil {
		t.Fatalf("Failed to create upload: %v", err)
	}

	noteID, err := svc.Accept(ctx, created.ID, 10, nil)
	if err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	note, err := svc.Notes.Get(ctx, noteID)
	if err != nil {
		t.Fatalf("Promoted note missing: %v", err)
	}
	if note.Title != "Algebra Notes" || note.Subject != "Math" {
		t.Errorf("Note projection wrong: %+v", note)
	}
	if note.UploaderAlias != "Asha" {
		t.Errorf("Expected uploader alias Asha, got %q", note.UploaderAlias)
	}
	if note.Likes != 0 || note.Downloads != 0 {
		t.Errorf("New note counters must start at zero: %+v", note)
	}

	upload, err := svc.Uploads.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Upload lookup failed: %v", err)
	}
	if upload.Status != model.UploadStatusAccepted {
		t.Errorf("Expected status accepted, got %q", upload.Status)
	}
	if upload.AssignedPoints == nil || *upload.AssignedPoints != 10 {
		t.Errorf("Expected assigned_points 10, got %v", upload.AssignedPoints)
	}

	asha, err := svc.Contributors.FindByName(ctx, "Asha")
	if err != nil {
		t.Fatalf("Contributor lookup failed: %v", err)
	}
	if asha == nil {
		t.Fatal("Contributor Asha was not created on first award")
	}
	if asha.Points != 10 {
		t.Errorf("Expected 10 points, got %d", asha.Points)
	}
}

func TestAcceptIncrementsExistingContributor(t *testing.T) {
	svc, _ := newReviewService()
	ctx := context.Background()

	first, _ := svc.Uploads.Create(ctx, pendingUpload("Asha"))
	second, _ := svc.Uploads.Create(ctx, pendingUpload("Asha"))

	if _, err := svc.Accept(ctx, first.ID, 10, nil); err != nil {
		t.Fatalf("First accept failed: %v", err)
	}
	if _, err := svc.Accept(ctx, second.ID, 5, nil); err != nil {
		t.Fatalf("Second accept failed: %v", err)
	}

	asha, err := svc.Contributors.FindByName(ctx, "Asha")
	if err != nil || asha == nil {
		t.Fatalf("Contributor lookup failed: %v", err)
	}
	if asha.Points != 15 {
		t.Errorf("Expected 15 points after both awards, got %d", asha.Points)
	}
}

func TestAcceptTwiceDoesNotDuplicateNote(t *testing.T) {
	svc, st := newReviewService()
	ctx := context.Background()

	created, _ := svc.Uploads.Create(ctx, pendingUpload("Asha"))

	if _, err := svc.Accept(ctx, created.ID, 10, nil); err != nil {
		t.Fatalf("First accept failed: %v", err)
	}
	if _, err := svc.Accept(ctx, created.ID, 10, nil); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("Expected ErrAlreadyReviewed, got %v", err)
	}

	if st.Count("note") != 1 {
		t.Errorf("Second accept duplicated the note: %d notes", st.Count("note"))
	}

	asha, _ := svc.Contributors.FindByName(ctx, "Asha")
	if asha.Points != 10 {
		t.Errorf("Second accept must not award again, got %d points", asha.Points)
	}
}

func TestRejectThenAcceptIsRefused(t *testing.T) {
	svc, st := newReviewService()
	ctx := context.Background()

	created, _ := svc.Uploads.Create(ctx, pendingUpload(""))

	if err := svc.Reject(ctx, created.ID, "blurry scans"); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}

	upload, _ := svc.Uploads.Get(ctx, created.ID)
	if upload.Status != model.UploadStatusRejected {
		t.Fatalf("Expected status rejected, got %q", upload.Status)
	}
	if upload.ReviewerNote == nil || *upload.ReviewerNote != "blurry scans" {
		t.Errorf("Reject must record the reason, got %v", upload.ReviewerNote)
	}

	if _, err := svc.Accept(ctx, created.ID, 10, nil); !errors.Is(err, ErrAlreadyReviewed) {
		t.Errorf("Expected ErrAlreadyReviewed after reject, got %v", err)
	}
	if st.Count("note") != 0 {
		t.Error("Accept after reject must not create a note")
	}
}

func TestAcceptMissingUpload(t *testing.T) {
	svc, _ := newReviewService()

	_, err := svc.Accept(context.Background(), "507f1f77bcf86cd799439011", 10, nil)
	if !errors.Is(err, ErrUploadNotFound) {
		t.Errorf("Expected ErrUploadNotFound, got %v", err)
	}
}

func TestAcceptWithoutContributorUsesAdminAlias(t *testing.T) {
	svc, _ := newReviewService()
	ctx := context.Background()

	created, _ := svc.Uploads.Create(ctx, pendingUpload(""))

	noteID, err := svc.Accept(ctx, created.ID, 3, nil)
	if err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	note, _ := svc.Notes.Get(ctx, noteID)
	if note.UploaderAlias != "Admin Upload" {
		t.Errorf("Expected Admin Upload alias, got %q", note.UploaderAlias)
	}

	contributors, err := svc.Contributors.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(contributors) != 0 {
		t.Errorf("No contributor should be created for anonymous uploads, got %d", len(contributors))
	}
}
