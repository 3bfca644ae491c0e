package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/forgo/clubsphere/internal/database"
	"github.com/forgo/clubsphere/internal/model"
)

// Mock implementations

type mockClubRepo struct {
	clubs     map[string]*model.Club
	nameIndex map[string]string
	nextID    int
	createErr error
	getErr    error
	saveErr   error
	saveCount int
}

func newMockClubRepo() *mockClubRepo {
	return &mockClubRepo{
		clubs:     make(map[string]*model.Club),
		nameIndex: make(map[string]string),
	}
}

func (m *mockClubRepo) Create(ctx context.Context, club *model.Club) (*model.Club, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, exists := m.nameIndex[club.Name]; exists {
		return nil, database.ErrDuplicate
	}
	m.nextID++
	club.ID = fmt.Sprintf("club:%d", m.nextID)
	club.Version = 1
	club.CreatedOn = time.Now()
	club.UpdatedOn = club.CreatedOn
	stored := cloneClub(club)
	m.clubs[club.ID] = stored
	m.nameIndex[club.Name] = club.ID
	return cloneClub(stored), nil
}

func (m *mockClubRepo) GetByID(ctx context.Context, clubID string) (*model.Club, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	club, ok := m.clubs[clubID]
	if !ok {
		return nil, nil
	}
	return cloneClub(club), nil
}

func (m *mockClubRepo) GetByName(ctx context.Context, name string) (*model.Club, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	id, ok := m.nameIndex[name]
	if !ok {
		return nil, nil
	}
	return cloneClub(m.clubs[id]), nil
}

// Save enforces the version check the way the real repository does.
func (m *mockClubRepo) Save(ctx context.Context, club *model.Club) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	stored, ok := m.clubs[club.ID]
	if !ok {
		return database.ErrNotFound
	}
	if stored.Version != club.Version {
		return database.ErrConflict
	}
	m.saveCount++
	club.Version++
	club.UpdatedOn = time.Now()
	delete(m.nameIndex, stored.Name)
	m.clubs[club.ID] = cloneClub(club)
	m.nameIndex[club.Name] = club.ID
	return nil
}

func (m *mockClubRepo) ListSummariesByIDs(ctx context.Context, clubIDs []string) ([]model.ClubSummary, error) {
	summaries := make([]model.ClubSummary, 0, len(clubIDs))
	for _, id := range clubIDs {
		if club, ok := m.clubs[id]; ok {
			summaries = append(summaries, club.Summary())
		}
	}
	return summaries, nil
}

func (m *mockClubRepo) ListAllSummaries(ctx context.Context) ([]model.ClubSummary, error) {
	summaries := make([]model.ClubSummary, 0, len(m.clubs))
	for _, club := range m.clubs {
		summaries = append(summaries, club.Summary())
	}
	return summaries, nil
}

func cloneClub(c *model.Club) *model.Club {
	clone := *c
	clone.Members = append([]model.Membership(nil), c.Members...)
	clone.PendingInvitations = append([]string(nil), c.PendingInvitations...)
	clone.Announcements = append([]model.Announcement(nil), c.Announcements...)
	clone.Activities = append([]model.Activity(nil), c.Activities...)
	clone.Meetings = append([]model.Meeting(nil), c.Meetings...)
	clone.Polls = clonePolls(c.Polls)
	clone.Resources = append([]model.Resource(nil), c.Resources...)
	clone.Events = cloneEvents(c.Events)
	clone.Achievements = cloneAchievements(c.Achievements)
	clone.Feedback = append([]model.Feedback(nil), c.Feedback...)
	clone.Contacts = append([]model.Contact(nil), c.Contacts...)
	return &clone
}

func clonePolls(polls []model.Poll) []model.Poll {
	out := make([]model.Poll, len(polls))
	for i, p := range polls {
		out[i] = p
		out[i].Options = make([]model.PollOption, len(p.Options))
		for j, o := range p.Options {
			out[i].Options[j] = o
			out[i].Options[j].Votes = append([]string(nil), o.Votes...)
		}
	}
	return out
}

func cloneEvents(events []model.Event) []model.Event {
	out := make([]model.Event, len(events))
	for i, e := range events {
		out[i] = e
		out[i].Volunteers = append([]model.Volunteer(nil), e.Volunteers...)
	}
	return out
}

func cloneAchievements(achievements []model.Achievement) []model.Achievement {
	out := make([]model.Achievement, len(achievements))
	for i, a := range achievements {
		out[i] = a
		out[i].Awards = append([]model.Award(nil), a.Awards...)
	}
	return out
}

type mockUserRepo struct {
	users      map[string]*model.User
	emailIndex map[string]string
	nextID     int
	getErr     error
	cacheErr   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:      make(map[string]*model.User),
		emailIndex: make(map[string]string),
	}
}

func (m *mockUserRepo) addUser(id, name, email string) *model.User {
	user := &model.User{
		ID:          id,
		Name:        name,
		Email:       email,
		AccountType: model.AccountTypeStudent,
	}
	m.users[id] = user
	m.emailIndex[email] = id
	return user
}

func (m *mockUserRepo) Create(ctx context.Context, name, email, hash string, accountType model.AccountType) (*model.User, error) {
	m.nextID++
	user := &model.User{
		ID:          fmt.Sprintf("user:%d", m.nextID),
		Name:        name,
		Email:       email,
		Hash:        hash,
		AccountType: accountType,
		CreatedOn:   time.Now(),
		UpdatedOn:   time.Now(),
	}
	m.users[user.ID] = user
	m.emailIndex[email] = user.ID
	return user, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users[userID], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	id, ok := m.emailIndex[email]
	if !ok {
		return nil, nil
	}
	return m.users[id], nil
}

func (m *mockUserRepo) ListRefsByIDs(ctx context.Context, userIDs []string) (map[string]model.UserRef, error) {
	refs := make(map[string]model.UserRef)
	for _, id := range userIDs {
		if user, ok := m.users[id]; ok {
			refs[id] = user.Ref()
		}
	}
	return refs, nil
}

func (m *mockUserRepo) AddCreatedClub(ctx context.Context, userID, clubID string) error {
	return m.updateList(userID, clubID, func(u *model.User, id string) {
		u.ClubsCreated = appendUnique(u.ClubsCreated, id)
	})
}

func (m *mockUserRepo) AddJoinedClub(ctx context.Context, userID, clubID string) error {
	return m.updateList(userID, clubID, func(u *model.User, id string) {
		u.ClubsJoined = appendUnique(u.ClubsJoined, id)
	})
}

func (m *mockUserRepo) RemoveJoinedClub(ctx context.Context, userID, clubID string) error {
	return m.updateList(userID, clubID, func(u *model.User, id string) {
		u.ClubsJoined = removeString(u.ClubsJoined, id)
	})
}

func (m *mockUserRepo) AddInvitedClub(ctx context.Context, userID, clubID string) error {
	return m.updateList(userID, clubID, func(u *model.User, id string) {
		u.ClubsInvited = appendUnique(u.ClubsInvited, id)
	})
}

func (m *mockUserRepo) RemoveInvitedClub(ctx context.Context, userID, clubID string) error {
	return m.updateList(userID, clubID, func(u *model.User, id string) {
		u.ClubsInvited = removeString(u.ClubsInvited, id)
	})
}

func (m *mockUserRepo) updateList(userID, clubID string, apply func(*model.User, string)) error {
	if m.cacheErr != nil {
		return m.cacheErr
	}
	if user, ok := m.users[userID]; ok {
		apply(user, clubID)
	}
	return nil
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

type mockFileStore struct {
	removed   []string
	removeErr error
}

func (m *mockFileStore) Remove(url string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, url)
	return nil
}

// seedClub installs a club directly into the mock store and registers a
// user record for every member.
func seedClub(clubRepo *mockClubRepo, userRepo *mockUserRepo, name string, members ...model.Membership) *model.Club {
	clubRepo.nextID++
	club := &model.Club{
		ID:      fmt.Sprintf("club:%d", clubRepo.nextID),
		Name:    name,
		Members: members,
		Version: 1,
	}
	if len(members) > 0 {
		club.CreatedBy = members[0].UserID
	}
	clubRepo.clubs[club.ID] = club
	clubRepo.nameIndex[name] = club.ID
	for _, m := range members {
		if _, ok := userRepo.users[m.UserID]; !ok {
			userRepo.addUser(m.UserID, m.UserID, m.UserID+"@example.com")
		}
	}
	return cloneClub(club)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
