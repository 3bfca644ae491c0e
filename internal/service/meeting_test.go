package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/forgo/clubsphere/internal/model"
)

func setupMeetingService(t *testing.T) (*MeetingService, *mockClubRepo, *model.Club) {
	t.Helper()
	clubRepo := newMockClubRepo()
	userRepo := newMockUserRepo()
	club := seedClub(clubRepo, userRepo, "Chess Club",
		model.Membership{UserID: "user:owner", Role: model.RoleOwner},
		model.Membership{UserID: "user:member", Role: model.RoleMember},
		model.Membership{UserID: "user:other", Role: model.RoleMember},
	)
	return NewMeetingService(clubRepo), clubRepo, club
}

func TestMeetingService_Create_FiltersInvitees(t *testing.T) {
	svc, clubRepo, club := setupMeetingService(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, "user:owner", club.ID, CreateMeetingRequest{
		Title:    "Weekly sync",
		Date:     time.Now().Add(24 * time.Hour),
		Invitees: []string{"user:member", "user:member", "user:stranger"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(meeting.Invites) != 1 {
		t.Fatalf("expected 1 invite after dedupe and member filter, got %d", len(meeting.Invites))
	}
	if meeting.Invites[0].UserID != "user:member" || meeting.Invites[0].Status != model.MeetingInvitePending {
		t.Errorf("unexpected invite: %+v", meeting.Invites[0])
	}
	if got := len(clubRepo.clubs[club.ID].Meetings); got != 1 {
		t.Errorf("meeting not persisted, got %d", got)
	}
}

func TestMeetingService_MarkAttendance(t *testing.T) {
	svc, clubRepo, club := setupMeetingService(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, "user:owner", club.ID, CreateMeetingRequest{
		Title:    "Weekly sync",
		Date:     time.Now(),
		Invitees: []string{"user:member"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.MarkAttendance(ctx, "user:member", club.ID, meeting.ID); err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}

	stored := clubRepo.clubs[club.ID].Meetings[0]
	if !stored.HasAttended("user:member") {
		t.Error("attendance not recorded")
	}
	if stored.Invites[0].Status != model.MeetingInviteAccepted {
		t.Errorf("invite status = %q, want accepted", stored.Invites[0].Status)
	}
}

func TestMeetingService_MarkAttendance_Rules(t *testing.T) {
	svc, _, club := setupMeetingService(t)
	ctx := context.Background()

	meeting, err := svc.Create(ctx, "user:owner", club.ID, CreateMeetingRequest{
		Title:    "Weekly sync",
		Date:     time.Now(),
		Invitees: []string{"user:member"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.MarkAttendance(ctx, "user:member", club.ID, meeting.ID); err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}

	tests := []struct {
		name      string
		userID    string
		meetingID string
		wantErr   error
	}{
		{"duplicate attendance", "user:member", meeting.ID, ErrAttendanceAlreadySet},
		{"not invited", "user:other", meeting.ID, ErrNotInvitedToMeeting},
		{"not a member", "user:stranger", meeting.ID, ErrNotClubMember},
		{"unknown meeting", "user:member", "nope", ErrMeetingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.MarkAttendance(ctx, tt.userID, club.ID, tt.meetingID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMeetingService_List_MembersOnly(t *testing.T) {
	svc, _, club := setupMeetingService(t)
	ctx := context.Background()

	if _, err := svc.List(ctx, "user:stranger", club.ID); !errors.Is(err, ErrNotClubMember) {
		t.Errorf("expected ErrNotClubMember, got %v", err)
	}
	meetings, err := svc.List(ctx, "user:member", club.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(meetings) != 0 {
		t.Errorf("expected empty list, got %d", len(meetings))
	}
}
