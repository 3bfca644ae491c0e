package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forgo/clubsphere/internal/database"
	"github.com/forgo/clubsphere/internal/model"
)

func setupClubService(t *testing.T) (*ClubService, *mockClubRepo, *mockUserRepo) {
	t.Helper()
	clubRepo := newMockClubRepo()
	userRepo := newMockUserRepo()
	svc := NewClubService(clubRepo, userRepo, testLogger())
	return svc, clubRepo, userRepo
}

func mustCreateClub(t *testing.T, svc *ClubService, userRepo *mockUserRepo, ownerID, name string) *model.Club {
	t.Helper()
	if _, ok := userRepo.users[ownerID]; !ok {
		userRepo.addUser(ownerID, "Owner", ownerID+"@example.com")
	}
	club, err := svc.CreateClub(context.Background(), ownerID, model.CreateClubRequest{Name: name})
	if err != nil {
		t.Fatalf("CreateClub failed: %v", err)
	}
	return club
}

func TestClubService_CreateClub_CreatorIsSoleOwner(t *testing.T) {
	svc, _, userRepo := setupClubService(t)
	userRepo.addUser("user:alice", "Alice", "alice@example.com")

	club, err := svc.CreateClub(context.Background(), "user:alice", model.CreateClubRequest{
		Name:        "Chess Club",
		Description: "We play chess",
	})
	if err != nil {
		t.Fatalf("CreateClub failed: %v", err)
	}

	if len(club.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(club.Members))
	}
	if club.Members[0].UserID != "user:alice" || club.Members[0].Role != model.RoleOwner {
		t.Errorf("expected alice as owner, got %+v", club.Members[0])
	}
	if len(club.PendingInvitations) != 0 {
		t.Errorf("expected no pending invitations, got %d", len(club.PendingInvitations))
	}

	// Creator's caches are refreshed
	alice := userRepo.users["user:alice"]
	if len(alice.ClubsCreated) != 1 || alice.ClubsCreated[0] != club.ID {
		t.Errorf("clubs_created not refreshed: %v", alice.ClubsCreated)
	}
	if len(alice.ClubsJoined) != 1 || alice.ClubsJoined[0] != club.ID {
		t.Errorf("clubs_joined not refreshed: %v", alice.ClubsJoined)
	}
}

func TestClubService_CreateClub_Validation(t *testing.T) {
	svc, _, userRepo := setupClubService(t)
	userRepo.addUser("user:alice", "Alice", "alice@example.com")
	ctx := context.Background()

	longName := make([]byte, model.MaxClubNameLength+1)
	for i := range longName {
		longName[i] = 'x'
	}

	tests := []struct {
		name    string
		req     model.CreateClubRequest
		wantErr error
	}{
		{"empty name", model.CreateClubRequest{Name: "   "}, ErrClubNameRequired},
		{"name too long", model.CreateClubRequest{Name: string(longName)}, ErrClubNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateClub(ctx, "user:alice", tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestClubService_CreateClub_DuplicateName(t *testing.T) {
	svc, _, userRepo := setupClubService(t)
	mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	userRepo.addUser("user:bob", "Bob", "bob@example.com")

	_, err := svc.CreateClub(context.Background(), "user:bob", model.CreateClubRequest{Name: "Chess Club"})
	if !errors.Is(err, ErrClubNameExists) {
		t.Errorf("expected ErrClubNameExists, got %v", err)
	}
}

func TestClubService_Invite_AddsPendingEntry(t *testing.T) {
	svc, clubRepo, userRepo := setupClubService(t)
	club := mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	userRepo.addUser("user:bob", "Bob", "bob@example.com")
	ctx := context.Background()

	if err := svc.Invite(ctx, "user:alice", club.ID, "user:bob"); err != nil {
		t.Fatalf("Invite failed: %v", err)
	}

	stored := clubRepo.clubs[club.ID]
	if !stored.IsInvited("user:bob") {
		t.Error("bob not in pending invitations")
	}
	if stored.IsMember("user:bob") {
		t.Error("bob must not be a member yet")
	}
	bob := userRepo.users["user:bob"]
	if len(bob.ClubsInvited) != 1 || bob.ClubsInvited[0] != club.ID {
		t.Errorf("clubs_invited not refreshed: %v", bob.ClubsInvited)
	}
}

func TestClubService_Invite_SecondInviteRejectedUnchanged(t *testing.T) {
	svc, clubRepo, userRepo := setupClubService(t)
	club := mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	userRepo.addUser("user:bob", "Bob", "bob@example.com")
	ctx := context.Background()

	if err := svc.Invite(ctx, "user:alice", club.ID, "user:bob"); err != nil {
		t.Fatalf("first invite failed: %v", err)
	}

	err := svc.Invite(ctx, "user:alice", club.ID, "user:bob")
	if !errors.Is(err, ErrAlreadyInvited) {
		t.Fatalf("expected ErrAlreadyInvited, got %v", err)
	}

	stored := clubRepo.clubs[club.ID]
	if len(stored.PendingInvitations) != 1 {
		t.Errorf("pending set changed on rejected invite: %v", stored.PendingInvitations)
	}
}

func TestClubService_Invite_Rules(t *testing.T) {
	svc, _, userRepo := setupClubService(t)
	club := mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	userRepo.addUser("user:bob", "Bob", "bob@example.com")
	ctx := context.Background()

	// Target must exist
	if err := svc.Invite(ctx, "user:alice", club.ID, "user:ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	// Inviter must be a member at all
	if err := svc.Invite(ctx, "user:bob", club.ID, "user:bob"); !errors.Is(err, ErrNotClubMember) {
		t.Errorf("expected ErrNotClubMember, got %v", err)
	}

	// Inviting an existing member is a conflict
	if err := svc.Invite(ctx, "user:alice", club.ID, "user:alice"); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("expected ErrAlreadyMember, got %v", err)
	}

	// Plain members cannot invite
	if err := svc.Invite(ctx, "user:alice", club.ID, "user:bob"); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if err := svc.RespondToInvitation(ctx, "user:bob", club.ID, true); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	userRepo.addUser("user:carol", "Carol", "carol@example.com")
	if err := svc.Invite(ctx, "user:bob", club.ID, "user:carol"); !errors.Is(err, ErrNotClubManager) {
		t.Errorf("expected ErrNotClubManager, got %v", err)
	}
}

func TestClubService_RespondToInvitation_Accept(t *testing.T) {
	svc, clubRepo, userRepo := setupClubService(t)
	club := mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	userRepo.addUser("user:bob", "Bob", "bob@example.com")
	ctx := context.Background()

	if err := svc.Invite(ctx, "user:alice", club.ID, "user:bob"); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if err := svc.RespondToInvitation(ctx, "user:bob", club.ID, true); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	stored := clubRepo.clubs[club.ID]
	role, ok := stored.RoleOf("user:bob")
	if !ok || role != model.RoleMember {
		t.Errorf("expected bob as member, got %q (member=%v)", role, ok)
	}
	if stored.IsInvited("user:bob") {
		t.Error("pending entry must be cleared on accept")
	}

	bob := userRepo.users["user:bob"]
	if len(bob.ClubsInvited) != 0 {
		t.Errorf("clubs_invited not cleared: %v", bob.ClubsInvited)
	}
	if len(bob.ClubsJoined) != 1 {
		t.Errorf("clubs_joined not refreshed: %v", bob.ClubsJoined)
	}
}

func TestClubService_RespondToInvitation_Decline(t *testing.T) {
	svc, clubRepo, userRepo := setupClubService(t)
	club := mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	userRepo.addUser("user:bob", "Bob", "bob@example.com")
	ctx := context.Background()

	if err := svc.Invite(ctx, "user:alice", club.ID, "user:bob"); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if err := svc.RespondToInvitation(ctx, "user:bob", club.ID, false); err != nil {
		t.Fatalf("decline failed: %v", err)
	}

	stored := clubRepo.clubs[club.ID]
	if stored.IsInvited("user:bob") {
		t.Error("pending entry must be cleared on decline")
	}
	if stored.IsMember("user:bob") {
		t.Error("declined user must not become a member")
	}

	// Declining a second time finds nothing pending
	err := svc.RespondToInvitation(ctx, "user:bob", club.ID, false)
	if !errors.Is(err, ErrNoInvitationFound) {
		t.Errorf("expected ErrNoInvitationFound, got %v", err)
	}
}

func TestClubService_RemoveMember_OwnerProtected(t *testing.T) {
	svc, _, userRepo := setupClubService(t)
	club := mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	userRepo.addUser("user:bob", "Bob", "bob@example.com")
	ctx := context.Background()

	if err := svc.Invite(ctx, "user:alice", club.ID, "user:bob"); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if err := svc.RespondToInvitation(ctx, "user:bob", club.ID, true); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	err := svc.RemoveMember(ctx, "user:alice", club.ID, "user:alice")
	if !errors.Is(err, ErrCannotRemoveOwner) {
		t.Errorf("expected ErrCannotRemoveOwner, got %v", err)
	}
}

func TestClubService_RemoveMember(t *testing.T) {
	svc, clubRepo, userRepo := setupClubService(t)
	club := mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	userRepo.addUser("user:bob", "Bob", "bob@example.com")
	ctx := context.Background()

	if err := svc.Invite(ctx, "user:alice", club.ID, "user:bob"); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if err := svc.RespondToInvitation(ctx, "user:bob", club.ID, true); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	if err := svc.RemoveMember(ctx, "user:alice", club.ID, "user:bob"); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}

	stored := clubRepo.clubs[club.ID]
	if stored.IsMember("user:bob") {
		t.Error("bob still a member after removal")
	}
	bob := userRepo.users["user:bob"]
	if len(bob.ClubsJoined) != 0 {
		t.Errorf("clubs_joined not cleared: %v", bob.ClubsJoined)
	}

	// Removing someone who is not a member
	err := svc.RemoveMember(ctx, "user:alice", club.ID, "user:bob")
	if !errors.Is(err, ErrNotAMember) {
		t.Errorf("expected ErrNotAMember, got %v", err)
	}
}

func TestClubService_EditClub(t *testing.T) {
	svc, _, userRepo := setupClubService(t)
	club := mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	userRepo.addUser("user:bob", "Bob", "bob@example.com")
	ctx := context.Background()

	newName := "Chess Society"
	newDesc := "All levels welcome"
	updated, err := svc.EditClub(ctx, "user:alice", club.ID, model.UpdateClubRequest{
		Name:        &newName,
		Description: &newDesc,
	})
	if err != nil {
		t.Fatalf("EditClub failed: %v", err)
	}
	if updated.Name != "Chess Society" || updated.Description != "All levels welcome" {
		t.Errorf("unexpected club after edit: %+v", updated)
	}

	// Non-members cannot edit
	_, err = svc.EditClub(ctx, "user:bob", club.ID, model.UpdateClubRequest{Name: &newName})
	if !errors.Is(err, ErrNotClubMember) {
		t.Errorf("expected ErrNotClubMember, got %v", err)
	}
}

func TestClubService_ConcurrentSaveConflict(t *testing.T) {
	svc, clubRepo, userRepo := setupClubService(t)
	club := mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	ctx := context.Background()

	// Simulates another writer saving between this request's load and save
	clubRepo.saveErr = database.ErrConflict

	desc := "new description"
	_, err := svc.EditClub(ctx, "user:alice", club.ID, model.UpdateClubRequest{Description: &desc})
	if !errors.Is(err, ErrVersionConflict) {
		t.Errorf("expected ErrVersionConflict, got %v", err)
	}
}

func TestClubService_MembershipLifecycle(t *testing.T) {
	svc, clubRepo, userRepo := setupClubService(t)
	ctx := context.Background()

	userRepo.addUser("user:owner", "Owner", "owner@example.com")
	userRepo.addUser("user:member", "Member", "member@example.com")
	userRepo.addUser("user:third", "Third", "third@example.com")

	club, err := svc.CreateClub(ctx, "user:owner", model.CreateClubRequest{Name: "Robotics"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Invite(ctx, "user:owner", club.ID, "user:member"); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if err := svc.RespondToInvitation(ctx, "user:member", club.ID, true); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	if err := svc.RemoveMember(ctx, "user:member", club.ID, "user:owner"); !errors.Is(err, ErrNotClubManager) {
		t.Errorf("member removing owner: expected ErrNotClubManager, got %v", err)
	}
	if err := svc.Invite(ctx, "user:member", club.ID, "user:third"); !errors.Is(err, ErrNotClubManager) {
		t.Errorf("member inviting: expected ErrNotClubManager, got %v", err)
	}

	// Ledger invariants held throughout
	stored := clubRepo.clubs[club.ID]
	owners := 0
	for _, m := range stored.Members {
		if m.Role == model.RoleOwner {
			owners++
		}
		if stored.IsInvited(m.UserID) {
			t.Errorf("member %s also pending", m.UserID)
		}
	}
	if owners != 1 {
		t.Errorf("expected exactly one owner, got %d", owners)
	}
}

func TestClubService_ListMyClubsAndInvitations(t *testing.T) {
	svc, _, userRepo := setupClubService(t)
	club := mustCreateClub(t, svc, userRepo, "user:alice", "Chess Club")
	second := mustCreateClub(t, svc, userRepo, "user:alice", "Debate Club")
	userRepo.addUser("user:bob", "Bob", "bob@example.com")
	ctx := context.Background()

	if err := svc.Invite(ctx, "user:alice", club.ID, "user:bob"); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if err := svc.Invite(ctx, "user:alice", second.ID, "user:bob"); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if err := svc.RespondToInvitation(ctx, "user:bob", club.ID, true); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	clubs, err := svc.ListMyClubs(ctx, "user:bob")
	if err != nil {
		t.Fatalf("ListMyClubs failed: %v", err)
	}
	if len(clubs) != 1 || clubs[0].ID != club.ID {
		t.Errorf("unexpected clubs: %+v", clubs)
	}

	invitations, err := svc.ListInvitations(ctx, "user:bob")
	if err != nil {
		t.Fatalf("ListInvitations failed: %v", err)
	}
	if len(invitations) != 1 || invitations[0].ID != second.ID {
		t.Errorf("unexpected invitations: %+v", invitations)
	}
}
