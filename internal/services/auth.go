package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"miniblog/internal/models"
	"miniblog/internal/session"
)

// RegisterInput carries the seven profile fields collected by the signup
// form. The shell validates emptiness; the service only guards uniqueness.
type RegisterInput struct {
	FirstName string
	LastName  string
	Contact   string
	Email     string
	Bio       string
	UserName  string
	Password  string
}

// Register creates the user_info and user_pass rows as one transaction and
// binds the session to the new identity. A taken user name or email returns
// ErrDuplicate with nothing written and the prior session untouched.
func (s *Service) Register(sess *session.Session, in RegisterInput) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only rejects over-long passwords at this cost
		return ErrInvalidInput
	}

	user := models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Contact:   in.Contact,
		Email:     in.Email,
		Bio:       in.Bio,
		UserName:  in.UserName,
		Role:      models.RoleUser,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("user_name = ? OR email = ?", in.UserName, in.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicate
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		cred := models.Credential{UserID: user.ID, PasswordHash: string(hash)}
		return tx.Create(&cred).Error
	})
	if errors.Is(err, ErrDuplicate) {
		return ErrDuplicate
	}
	if err != nil {
		return s.storeErr("register", err)
	}

	sess.Bind(user.ID, user.UserName)
	return nil
}

// Authenticate verifies the password against the stored bcrypt hash and on
// success rebinds the session. An unknown user name and a wrong password are
// both ErrNotFound; the session is left unchanged on any failure.
func (s *Service) Authenticate(sess *session.Session, userName, password string) error {
	var row struct {
		ID           uint
		UserName     string
		PasswordHash string
	}
	err := s.db.Model(&models.User{}).
		Select("user_info.id, user_info.user_name, user_pass.password_hash").
		Joins("JOIN user_pass ON user_pass.user_id = user_info.id").
		Where("user_info.user_name = ?", userName).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return s.storeErr("authenticate", err)
	}

	// constant-time comparison inside bcrypt
	if bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)) != nil {
		return ErrNotFound
	}

	sess.Bind(row.ID, row.UserName)
	return nil
}

// Profile returns the full profile of the session identity, memoized per
// session after the first successful read.
func (s *Service) Profile(sess *session.Session) (*models.User, error) {
	if !sess.Active() {
		return nil, ErrNoSession
	}
	if cached := sess.CachedProfile(); cached != nil {
		return cached, nil
	}

	var user models.User
	err := s.db.First(&user, sess.UserID()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.storeErr("profile", err)
	}

	sess.CacheProfile(&user)
	return &user, nil
}

// IsAdmin reports whether the session identity carries the admin role.
// Any failure, including a missing session, reads as false.
func (s *Service) IsAdmin(sess *session.Session) bool {
	profile, err := s.Profile(sess)
	return err == nil && profile.Role == models.RoleAdmin
}
