package models

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Reaction records one sentiment per (blog, user) pair. The composite unique
// index backs up what the write path already enforces by replacing the old
// row inside the same transaction.
type Reaction struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	BlogID uint   `gorm:"not null;uniqueIndex:idx_reaction_blog_user" json:"blog_id"`
	Blog   Blog   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_reaction_blog_user" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Value  string `gorm:"column:reaction;size:10;not null" json:"value"` // like or dislike
}

func (Reaction) TableName() string {
	return "blog_reactions"
}

// ValidReaction reports whether v is one of the two accepted values.
func ValidReaction(v string) bool {
	return v == ReactionLike || v == ReactionDislike
}
