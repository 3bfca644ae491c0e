package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forgo/clubsphere/internal/model"
)

func setupFeedbackService(t *testing.T) (*FeedbackService, *mockClubRepo, *model.Club) {
	t.Helper()
	clubRepo := newMockClubRepo()
	userRepo := newMockUserRepo()
	club := seedClub(clubRepo, userRepo, "Chess Club",
		model.Membership{UserID: "user:owner", Role: model.RoleOwner},
		model.Membership{UserID: "user:member", Role: model.RoleMember},
	)
	return NewFeedbackService(clubRepo, userRepo), clubRepo, club
}

func TestFeedbackService_Submit(t *testing.T) {
	svc, clubRepo, club := setupFeedbackService(t)
	ctx := context.Background()

	fb, err := svc.Submit(ctx, "user:member", club.ID, "More practice sessions please")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if fb.SubmittedBy != "user:member" || fb.ID == "" {
		t.Errorf("unexpected feedback: %+v", fb)
	}
	if got := len(clubRepo.clubs[club.ID].Feedback); got != 1 {
		t.Errorf("feedback not persisted, got %d", got)
	}

	if _, err := svc.Submit(ctx, "user:member", club.ID, "   "); !errors.Is(err, ErrFeedbackRequired) {
		t.Errorf("expected ErrFeedbackRequired, got %v", err)
	}
	if _, err := svc.Submit(ctx, "user:stranger", club.ID, "hi"); !errors.Is(err, ErrNotClubMember) {
		t.Errorf("expected ErrNotClubMember, got %v", err)
	}
}

func TestFeedbackService_List(t *testing.T) {
	svc, _, club := setupFeedbackService(t)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "user:member", club.ID, "first"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := svc.Submit(ctx, "user:owner", club.ID, "second"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	list, err := svc.List(ctx, "user:owner", club.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Submitter == nil || list[1].Submitter == nil {
		t.Error("submitter refs not resolved")
	}
	if list[0].SubmittedOn.Before(list[1].SubmittedOn) {
		t.Error("feedback must be ordered newest first")
	}
}
