package models

import (
	"time"
)

type Blog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"column:main_blog;type:text" json:"body"`
	CreatedBy uint      `gorm:"not null;index" json:"created_by"`
	Author    User      `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	CreatedAt time.Time `json:"created_at"`
	// dlt partitions a blog into active/trashed. Rows only leave the table
	// through the explicit permanent-delete path.
	Deleted bool `gorm:"column:dlt;not null;default:false" json:"deleted"`
}

func (Blog) TableName() string {
	return "blog"
}
