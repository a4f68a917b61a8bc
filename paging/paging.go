package paging

import (
	"strconv"

	"gorm.io/gorm"
)

// Page describes one slice of a larger result set. Numbers are 1-based.
type Page struct {
	Number     int
	Size       int
	TotalItems int64
	TotalPages int
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page) PrevNumber() int {
	return p.Number - 1
}

func (p Page) NextNumber() int {
	return p.Number + 1
}

// ParsePageNumber turns the raw `page` query value into a page number.
// Missing, malformed or sub-1 values all mean page 1.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate counts the query's result set, clamps number into the valid
// page range and loads that page into out. A request past the last page
// returns the last page rather than an error; an empty result set is a
// single empty page.
func Paginate(query *gorm.DB, size, number int, out interface{}) (Page, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page{}, err
	}
	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}
	err := query.Session(&gorm.Session{}).
		Offset((number - 1) * size).
		Limit(size).
		Find(out).Error
	if err != nil {
		return Page{}, err
	}
	return Page{
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: pages,
	}, nil
}
