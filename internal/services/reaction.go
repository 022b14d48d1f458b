package services

import (
	"errors"

	"gorm.io/gorm"

	"miniblog/internal/models"
	"miniblog/internal/session"
)

// ReactionSummary aggregates a blog's reactions. UserReaction is the
// session identity's own value, empty when absent or unauthenticated.
type ReactionSummary struct {
	Likes        int64  `json:"likes"`
	Dislikes     int64  `json:"dislikes"`
	UserReaction string `json:"user_reaction,omitempty"`
}

// SetReaction records the session identity's reaction on a blog, replacing
// any prior one for the same pair. The retract and the insert run inside a
// single transaction so the pair is never observed with zero rows where one
// was intended. Values outside like/dislike fail before the store is touched.
func (s *Service) SetReaction(sess *session.Session, blogID uint, value string) error {
	if !sess.Active() {
		return ErrNoSession
	}
	if !models.ValidReaction(value) {
		return ErrInvalidInput
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return s.storeErr("set_reaction", tx.Error)
	}

	if err := tx.Where("blog_id = ? AND user_id = ?", blogID, sess.UserID()).
		Delete(&models.Reaction{}).Error; err != nil {
		tx.Rollback()
		return s.storeErr("set_reaction", err)
	}

	reaction := models.Reaction{
		BlogID: blogID,
		UserID: sess.UserID(),
		Value:  value,
	}
	if err := tx.Create(&reaction).Error; err != nil {
		tx.Rollback()
		return s.storeErr("set_reaction", err)
	}

	if err := tx.Commit().Error; err != nil {
		return s.storeErr("set_reaction", err)
	}
	return nil
}

// ReactionSummary counts likes and dislikes across all users and looks up
// the session identity's own reaction, if any.
func (s *Service) ReactionSummary(sess *session.Session, blogID uint) (ReactionSummary, error) {
	var summary ReactionSummary

	if err := s.db.Model(&models.Reaction{}).
		Where("blog_id = ? AND reaction = ?", blogID, models.ReactionLike).
		Count(&summary.Likes).Error; err != nil {
		return ReactionSummary{}, s.storeErr("reaction_summary", err)
	}
	if err := s.db.Model(&models.Reaction{}).
		Where("blog_id = ? AND reaction = ?", blogID, models.ReactionDislike).
		Count(&summary.Dislikes).Error; err != nil {
		return ReactionSummary{}, s.storeErr("reaction_summary", err)
	}

	if sess.Active() {
		var own models.Reaction
		err := s.db.Where("blog_id = ? AND user_id = ?", blogID, sess.UserID()).
			Take(&own).Error
		switch {
		case err == nil:
			summary.UserReaction = own.Value
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return ReactionSummary{}, s.storeErr("reaction_summary", err)
		}
	}
	return summary, nil
}
