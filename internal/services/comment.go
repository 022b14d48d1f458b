package services

import (
	"miniblog/internal/models"
	"miniblog/internal/session"
)

// AddComment inserts a comment by the session identity. Any authenticated
// user may comment on any blog; there is no ownership restriction.
func (s *Service) AddComment(sess *session.Session, blogID uint, text string) error {
	if !sess.Active() {
		return ErrNoSession
	}
	comment := models.Comment{
		BlogID: blogID,
		UserID: sess.UserID(),
		Text:   text,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return s.storeErr("add_comment", err)
	}
	return nil
}

// ListComments returns a blog's comments with their authors, oldest first.
func (s *Service) ListComments(blogID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.
		Preload("User").
		Where("blog_id = ?", blogID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, s.storeErr("list_comments", err)
	}
	return comments, nil
}
