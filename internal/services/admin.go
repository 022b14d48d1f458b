package services

import (
	"miniblog/internal/models"
	"miniblog/internal/session"
)

// ListUsers returns every registered user, newest first. Non-admin callers
// get an empty slice, not an error.
func (s *Service) ListUsers(sess *session.Session) ([]models.User, error) {
	if !s.IsAdmin(sess) {
		return []models.User{}, nil
	}
	var users []models.User
	err := s.db.
		Order("created_at DESC, id DESC").
		Find(&users).Error
	if err != nil {
		return nil, s.storeErr("list_users", err)
	}
	return users, nil
}

// SetUserRole flips a user between the user and admin roles. Only admins may
// call it; a bad role value fails before the store is touched.
func (s *Service) SetUserRole(sess *session.Session, userID uint, role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return ErrInvalidInput
	}
	if !s.IsAdmin(sess) {
		return ErrNotAuthorized
	}

	res := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("role", role)
	if res.Error != nil {
		return s.storeErr("set_user_role", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	// An admin demoting themselves invalidates their own memoized profile.
	if sess.UserID() == userID {
		sess.CacheProfile(nil)
	}
	return nil
}
