package models

import "postboard/db"

// Group is a named topic that posts may be assigned to. Groups are created
// out of band; the handlers only ever read them.
type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(100);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

func Groups() (groups []Group, err error) {
	err = db.Instance.Order("title ASC").Find(&groups).Error
	return
}
