package services

import (
	"miniblog/internal/models"
	"miniblog/internal/session"
)

// CreateBlog inserts an active blog owned by the session identity.
func (s *Service) CreateBlog(sess *session.Session, title, body string) error {
	if !sess.Active() {
		return ErrNoSession
	}
	blog := models.Blog{
		Title:     title,
		Body:      body,
		CreatedBy: sess.UserID(),
	}
	if err := s.db.Create(&blog).Error; err != nil {
		return s.storeErr("create_blog", err)
	}
	return nil
}

// ListOwnBlogs returns the session identity's active blogs, newest first.
func (s *Service) ListOwnBlogs(sess *session.Session) ([]models.Blog, error) {
	if !sess.Active() {
		return nil, ErrNoSession
	}
	var blogs []models.Blog
	err := s.db.
		Where("created_by = ? AND dlt = ?", sess.UserID(), false).
		Order("created_at DESC, id DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, s.storeErr("list_own_blogs", err)
	}
	return blogs, nil
}

// ListCommunityBlogs returns every active blog with its author, newest
// first. No session is required; the shell decides who gets to see it.
func (s *Service) ListCommunityBlogs() ([]models.Blog, error) {
	var blogs []models.Blog
	err := s.db.
		Preload("Author").
		Where("dlt = ?", false).
		Order("created_at DESC, id DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, s.storeErr("list_community_blogs", err)
	}
	return blogs, nil
}

// UpdateBlog rewrites title and body of a blog the session identity owns.
// A missing row and a row owned by someone else both come back ErrNotFound.
func (s *Service) UpdateBlog(sess *session.Session, blogID uint, title, body string) error {
	if !sess.Active() {
		return ErrNoSession
	}
	res := s.db.Model(&models.Blog{}).
		Where("id = ? AND created_by = ?", blogID, sess.UserID()).
		Updates(map[string]any{"title": title, "main_blog": body})
	if res.Error != nil {
		return s.storeErr("update_blog", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete moves an owned blog to the trash.
func (s *Service) SoftDelete(sess *session.Session, blogID uint) error {
	return s.setDeleted(sess, blogID, true, "soft_delete")
}

// Restore moves an owned blog back out of the trash.
func (s *Service) Restore(sess *session.Session, blogID uint) error {
	return s.setDeleted(sess, blogID, false, "restore")
}

func (s *Service) setDeleted(sess *session.Session, blogID uint, deleted bool, op string) error {
	if !sess.Active() {
		return ErrNoSession
	}
	res := s.db.Model(&models.Blog{}).
		Where("id = ? AND created_by = ?", blogID, sess.UserID()).
		UpdateColumn("dlt", deleted)
	if res.Error != nil {
		return s.storeErr(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PermanentDelete physically removes an owned blog together with its
// comments and reactions, in one transaction. The data layer does not
// require the blog to be trashed first; that ordering is a shell convention.
func (s *Service) PermanentDelete(sess *session.Session, blogID uint) error {
	if !sess.Active() {
		return ErrNoSession
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return s.storeErr("permanent_delete", tx.Error)
	}

	res := tx.Where("id = ? AND created_by = ?", blogID, sess.UserID()).
		Delete(&models.Blog{})
	if res.Error != nil {
		tx.Rollback()
		return s.storeErr("permanent_delete", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	// Cascade in-transaction so engines without enforced foreign keys are
	// left orphan-free as well.
	if err := tx.Where("blog_id = ?", blogID).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		return s.storeErr("permanent_delete", err)
	}
	if err := tx.Where("blog_id = ?", blogID).Delete(&models.Reaction{}).Error; err != nil {
		tx.Rollback()
		return s.storeErr("permanent_delete", err)
	}

	if err := tx.Commit().Error; err != nil {
		return s.storeErr("permanent_delete", err)
	}
	return nil
}

// ListTrashed returns the session identity's trashed blogs, newest first.
func (s *Service) ListTrashed(sess *session.Session) ([]models.Blog, error) {
	if !sess.Active() {
		return nil, ErrNoSession
	}
	var blogs []models.Blog
	err := s.db.
		Where("created_by = ? AND dlt = ?", sess.UserID(), true).
		Order("created_at DESC, id DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, s.storeErr("list_trashed", err)
	}
	return blogs, nil
}
