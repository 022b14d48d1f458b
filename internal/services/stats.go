package services

import (
	"miniblog/internal/models"
	"miniblog/internal/session"
)

// UserStatistics backs the dashboard cards. CommunityPosts is global, the
// rest are scoped to the session identity. The six counts are independent
// queries; a write landing between two of them may skew the bundle by one,
// which the dashboard tolerates.
type UserStatistics struct {
	UserPosts        int64 `json:"user_posts"`
	TrashPosts       int64 `json:"trash_posts"`
	CommunityPosts   int64 `json:"community_posts"`
	UserComments     int64 `json:"user_comments"`
	LikesReceived    int64 `json:"likes_received"`
	DislikesReceived int64 `json:"dislikes_received"`
}

func (s *Service) UserStatistics(sess *session.Session) (UserStatistics, error) {
	if !sess.Active() {
		return UserStatistics{}, ErrNoSession
	}
	userID := sess.UserID()

	var stats UserStatistics
	counts := []struct {
		dst   *int64
		query func(dst *int64) error
	}{
		{&stats.UserPosts, func(dst *int64) error {
			return s.db.Model(&models.Blog{}).
				Where("created_by = ? AND dlt = ?", userID, false).
				Count(dst).Error
		}},
		{&stats.TrashPosts, func(dst *int64) error {
			return s.db.Model(&models.Blog{}).
				Where("created_by = ? AND dlt = ?", userID, true).
				Count(dst).Error
		}},
		{&stats.CommunityPosts, func(dst *int64) error {
			return s.db.Model(&models.Blog{}).
				Where("dlt = ?", false).
				Count(dst).Error
		}},
		{&stats.UserComments, func(dst *int64) error {
			return s.db.Model(&models.Comment{}).
				Where("user_id = ?", userID).
				Count(dst).Error
		}},
		{&stats.LikesReceived, func(dst *int64) error {
			return s.countReactionsReceived(userID, models.ReactionLike, dst)
		}},
		{&stats.DislikesReceived, func(dst *int64) error {
			return s.countReactionsReceived(userID, models.ReactionDislike, dst)
		}},
	}
	for _, c := range counts {
		if err := c.query(c.dst); err != nil {
			return UserStatistics{}, s.storeErr("user_statistics", err)
		}
	}
	return stats, nil
}

// countReactionsReceived counts reactions of one value across all of the
// user's blogs, trashed ones included.
func (s *Service) countReactionsReceived(userID uint, value string, dst *int64) error {
	return s.db.Model(&models.Reaction{}).
		Joins("JOIN blog ON blog.id = blog_reactions.blog_id").
		Where("blog.created_by = ? AND blog_reactions.reaction = ?", userID, value).
		Count(dst).Error
}
