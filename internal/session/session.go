// Package session holds the authenticated identity for one client process.
//
// The session is an explicit value threaded into every data-access operation
// rather than ambient state, so a process could in principle hold several
// independent sessions. A single session must not be shared across
// concurrent operations; the shell serializes calls at its boundary.
package session

import (
	"miniblog/internal/models"
)

type Session struct {
	userID   uint
	userName string
	profile  *models.User // memoized full profile, dropped on rebind/clear
}

func New() *Session {
	return &Session{}
}

// Bind sets the session to the given identity and drops any cached profile.
func (s *Session) Bind(userID uint, userName string) {
	s.userID = userID
	s.userName = userName
	s.profile = nil
}

// Clear resets the session to the unauthenticated state. Idempotent.
func (s *Session) Clear() {
	s.userID = 0
	s.userName = ""
	s.profile = nil
}

// Active reports whether an identity is bound.
func (s *Session) Active() bool {
	return s != nil && s.userID != 0
}

func (s *Session) UserID() uint {
	if s == nil {
		return 0
	}
	return s.userID
}

func (s *Session) UserName() string {
	if s == nil {
		return ""
	}
	return s.userName
}

// Identity returns the bound id and display name, or ok=false when the
// session is unauthenticated.
func (s *Session) Identity() (id uint, userName string, ok bool) {
	if !s.Active() {
		return 0, "", false
	}
	return s.userID, s.userName, true
}

// CachedProfile returns the memoized profile, if any.
func (s *Session) CachedProfile() *models.User {
	if s == nil {
		return nil
	}
	return s.profile
}

// CacheProfile memoizes the profile for later reads in this session.
func (s *Session) CacheProfile(u *models.User) {
	if s != nil {
		s.profile = u
	}
}
