package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/forgo/clubsphere/internal/model"
)

func setupEventService(t *testing.T) (*EventService, *mockClubRepo, *model.Club) {
	t.Helper()
	clubRepo := newMockClubRepo()
	userRepo := newMockUserRepo()
	club := seedClub(clubRepo, userRepo, "Chess Club",
		model.Membership{UserID: "user:owner", Role: model.RoleOwner},
		model.Membership{UserID: "user:member", Role: model.RoleMember},
	)
	return NewEventService(clubRepo, userRepo), clubRepo, club
}

func TestEventService_Volunteer(t *testing.T) {
	svc, clubRepo, club := setupEventService(t)
	ctx := context.Background()

	event, err := svc.Create(ctx, "user:owner", club.ID, CreateEventRequest{
		Title: "Bake Sale",
		Date:  time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Volunteer(ctx, "user:member", club.ID, event.ID); err != nil {
		t.Fatalf("Volunteer failed: %v", err)
	}

	stored := clubRepo.clubs[club.ID].Events[0]
	if !stored.HasVolunteer("user:member") {
		t.Error("sign-up not recorded")
	}

	// Second sign-up is a conflict and leaves the list unchanged
	err = svc.Volunteer(ctx, "user:member", club.ID, event.ID)
	if !errors.Is(err, ErrAlreadySignedUp) {
		t.Errorf("expected ErrAlreadySignedUp, got %v", err)
	}
	if got := len(clubRepo.clubs[club.ID].Events[0].Volunteers); got != 1 {
		t.Errorf("volunteer count = %d, want 1", got)
	}
}

func TestEventService_Volunteer_Errors(t *testing.T) {
	svc, _, club := setupEventService(t)
	ctx := context.Background()

	event, err := svc.Create(ctx, "user:owner", club.ID, CreateEventRequest{Title: "Bake Sale", Date: time.Now()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Volunteer(ctx, "user:stranger", club.ID, event.ID); !errors.Is(err, ErrNotClubMember) {
		t.Errorf("expected ErrNotClubMember, got %v", err)
	}
	if err := svc.Volunteer(ctx, "user:member", club.ID, "nope"); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventService_ListVolunteers(t *testing.T) {
	svc, _, club := setupEventService(t)
	ctx := context.Background()

	event, err := svc.Create(ctx, "user:owner", club.ID, CreateEventRequest{Title: "Bake Sale", Date: time.Now()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.Volunteer(ctx, "user:member", club.ID, event.ID); err != nil {
		t.Fatalf("Volunteer failed: %v", err)
	}

	volunteers, err := svc.ListVolunteers(ctx, "user:owner", club.ID, event.ID)
	if err != nil {
		t.Fatalf("ListVolunteers failed: %v", err)
	}
	if len(volunteers) != 1 {
		t.Fatalf("expected 1 volunteer, got %d", len(volunteers))
	}
	if volunteers[0].User == nil || volunteers[0].User.ID != "user:member" {
		t.Errorf("user ref not resolved: %+v", volunteers[0])
	}
}

func TestEventService_Delete(t *testing.T) {
	svc, clubRepo, club := setupEventService(t)
	ctx := context.Background()

	event, err := svc.Create(ctx, "user:owner", club.ID, CreateEventRequest{Title: "Bake Sale", Date: time.Now()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, "user:member", club.ID, event.ID); !errors.Is(err, ErrNotClubManager) {
		t.Errorf("expected ErrNotClubManager, got %v", err)
	}
	if err := svc.Delete(ctx, "user:owner", club.ID, event.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := len(clubRepo.clubs[club.ID].Events); got != 0 {
		t.Errorf("event not removed, %d left", got)
	}
}
