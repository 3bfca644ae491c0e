package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNameRequired       = errors.New("name is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidAccountType = errors.New("invalid account type")
)

// ===== Club Errors =====
var (
	ErrClubNotFound      = errors.New("club not found")
	ErrClubNameRequired  = errors.New("club name is required")
	ErrClubNameTooLong   = errors.New("club name exceeds maximum length")
	ErrClubDescTooLong   = errors.New("club description exceeds maximum length")
	ErrClubNameExists    = errors.New("a club with this name already exists")
	ErrNotClubMember     = errors.New("not a member of this club")
	ErrNotClubManager    = errors.New("not authorized to perform this action")
	ErrAlreadyMember     = errors.New("user is already a member of this club")
	ErrAlreadyInvited    = errors.New("user already has a pending invitation")
	ErrNoInvitationFound = errors.New("no pending invitation for this club")
	ErrNotAMember        = errors.New("user is not a member of this club")
	ErrCannotRemoveOwner = errors.New("the club owner cannot be removed")
	ErrVersionConflict   = errors.New("club was modified concurrently, retry the request")
)

// ===== Artifact Errors =====
var (
	ErrTitleRequired          = errors.New("title is required")
	ErrContentRequired        = errors.New("content is required")
	ErrAnnouncementNotFound   = errors.New("announcement not found")
	ErrActivityNotFound       = errors.New("activity not found")
	ErrMeetingNotFound        = errors.New("meeting not found")
	ErrNotInvitedToMeeting    = errors.New("user is not invited to this meeting")
	ErrAttendanceAlreadySet   = errors.New("attendance already marked for this meeting")
	ErrPollNotFound           = errors.New("poll not found")
	ErrPollOptionNotFound     = errors.New("poll option not found")
	ErrPollQuestionRequired   = errors.New("poll question is required")
	ErrPollOptionsRequired    = errors.New("a poll needs at least two options")
	ErrPollEditNotSupported   = errors.New("editing a poll is not supported")
	ErrResourceNotFound       = errors.New("resource not found")
	ErrResourceNameRequired   = errors.New("resource name is required")
	ErrResourceTargetRequired = errors.New("resource needs a file or a link")
	ErrEventNotFound          = errors.New("event not found")
	ErrAlreadySignedUp        = errors.New("already signed up to volunteer for this event")
	ErrAchievementNotFound    = errors.New("achievement not found")
	ErrAlreadyAwarded         = errors.New("achievement already awarded to this member")
	ErrNotAwarded             = errors.New("achievement was never awarded to this member")
	ErrFeedbackRequired       = errors.New("feedback content is required")
	ErrContactNotFound        = errors.New("contact not found")
	ErrContactNameRequired    = errors.New("contact name is required")
)
