package models

import (
	"time"

	"gorm.io/gorm"

	"postboard/db"
)

// Post is a text entry written by a user, optionally assigned to a group.
// The author is set once at creation and never reassigned; the group may be
// changed on edit.
type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:post_order"`
	UpdatedAt int64
	Text      string  `gorm:"type:text"`
	AuthorID  uint64  `gorm:"index"`
	Author    User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64 `gorm:"index"`
	Group     *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

func (p Post) CreatedTime() time.Time {
	return time.Unix(p.CreatedAt, 0)
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

// Posts is the base query for post listings: newest first, primary key
// ascending on equal timestamps.
func Posts() *gorm.DB {
	return db.Instance.Model(&Post{}).
		Preload("Author").
		Preload("Group").
		Order("created_at DESC, id ASC")
}
