package paging

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type entry struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	Label     string
}

var testDBCounter int64

func initTestDB(t *testing.T, count int) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:paging_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for i := 1; i <= count; i++ {
		if err := db.Create(&entry{CreatedAt: int64(i), Label: fmt.Sprintf("e%d", i)}).Error; err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}
	return db
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		number     int
		wantItems  int
		wantNumber int
		wantPages  int
	}{
		{"first page full", 15, 1, 10, 1, 2},
		{"last page partial", 15, 2, 5, 2, 2},
		{"past the end clamps", 15, 3, 5, 2, 2},
		{"sub-1 clamps to first", 15, 0, 10, 1, 2},
		{"exact multiple", 20, 2, 10, 2, 2},
		{"empty set is one empty page", 0, 1, 0, 1, 1},
		{"empty set clamps too", 0, 7, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := initTestDB(t, tt.count)
			var items []entry
			page, err := Paginate(db.Model(&entry{}).Order("created_at DESC, id ASC"), 10, tt.number, &items)
			if err != nil {
				t.Fatalf("Paginate: %v", err)
			}
			if len(items) != tt.wantItems {
				t.Errorf("got %d items, want %d", len(items), tt.wantItems)
			}
			if page.Number != tt.wantNumber {
				t.Errorf("page.Number = %d, want %d", page.Number, tt.wantNumber)
			}
			if page.TotalPages != tt.wantPages {
				t.Errorf("page.TotalPages = %d, want %d", page.TotalPages, tt.wantPages)
			}
			if page.TotalItems != int64(tt.count) {
				t.Errorf("page.TotalItems = %d, want %d", page.TotalItems, tt.count)
			}
		})
	}
}

func TestPaginateOrdering(t *testing.T) {
	db := initTestDB(t, 15)
	var items []entry
	if _, err := Paginate(db.Model(&entry{}).Order("created_at DESC, id ASC"), 10, 1, &items); err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if items[0].Label != "e15" {
		t.Errorf("first item on page 1 = %q, want e15", items[0].Label)
	}
	var second []entry
	if _, err := Paginate(db.Model(&entry{}).Order("created_at DESC, id ASC"), 10, 2, &second); err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if second[len(second)-1].Label != "e1" {
		t.Errorf("last item on page 2 = %q, want e1", second[len(second)-1].Label)
	}
}

func TestPageLinks(t *testing.T) {
	page := Page{Number: 2, Size: 10, TotalItems: 25, TotalPages: 3}
	if !page.HasPrev() || !page.HasNext() {
		t.Errorf("middle page should have both neighbours: %+v", page)
	}
	if page.PrevNumber() != 1 || page.NextNumber() != 3 {
		t.Errorf("neighbour numbers = %d/%d, want 1/3", page.PrevNumber(), page.NextNumber())
	}
	first := Page{Number: 1, TotalPages: 1}
	if first.HasPrev() || first.HasNext() {
		t.Errorf("single page should have no neighbours: %+v", first)
	}
}

func TestParsePageNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"1", 1},
		{"7", 7},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
		{"2.5", 1},
	}
	for _, tt := range tests {
		if got := ParsePageNumber(tt.raw); got != tt.want {
			t.Errorf("ParsePageNumber(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
