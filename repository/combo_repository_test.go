package repository

import (
	"fmt"
	"testing"

	"comboapi/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.Category{}, &entity.Dish{}, &entity.Combo{}, &entity.ComboDish{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestComboPage(t *testing.T) {
	db := newTestDB(t)
	repo := NewComboRepository(db)

	// 15 combos in category 5, 3 in category 6
	for i := 1; i <= 15; i++ {
		status := entity.StatusDisabled
		if i%2 == 0 {
			status = entity.StatusEnabled
		}
		combo := entity.Combo{Name: fmt.Sprintf("lunch %02d", i), CategoryID: 5, Status: status}
		if err := db.Create(&combo).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	for i := 1; i <= 3; i++ {
		combo := entity.Combo{Name: fmt.Sprintf("dinner %02d", i), CategoryID: 6}
		if err := db.Create(&combo).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	enabled := entity.StatusEnabled

	tests := []struct {
		name      string
		filter    ComboPageFilter
		wantLen   int
		wantTotal int64
	}{
		{"first page of category 5", ComboPageFilter{CategoryID: 5, Page: 1, PageSize: 10}, 10, 15},
		{"second page of category 5", ComboPageFilter{CategoryID: 5, Page: 2, PageSize: 10}, 5, 15},
		{"category 6", ComboPageFilter{CategoryID: 6, Page: 1, PageSize: 10}, 3, 3},
		{"name substring", ComboPageFilter{Name: "dinner", Page: 1, PageSize: 10}, 3, 3},
		{"status filter", ComboPageFilter{CategoryID: 5, Status: &enabled, Page: 1, PageSize: 10}, 7, 7},
		{"no filter", ComboPageFilter{Page: 1, PageSize: 100}, 18, 18},
		{"defaults applied", ComboPageFilter{}, 10, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := repo.Page(tt.filter)
			if err != nil {
				t.Fatalf("page: %v", err)
			}
			if len(items) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(items), tt.wantLen)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
		})
	}
}

func TestComboPageStableOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewComboRepository(db)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := db.Create(&entity.Combo{Name: name, CategoryID: 1}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	items, _, err := repo.Page(ComboPageFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	// creation order, not alphabetical
	want := []string{"zeta", "alpha", "mid"}
	for i, combo := range items {
		if combo.Name != want[i] {
			t.Errorf("items[%d] = %q, want %q", i, combo.Name, want[i])
		}
	}
}

func TestUpdateFieldsIsPartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewComboRepository(db)

	combo := entity.Combo{Name: "combo", CategoryID: 3, Price: 1200, Description: "orig"}
	if err := db.Create(&combo).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := repo.UpdateFields(db, combo.ID, map[string]any{"price": int64(2400)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	var got entity.Combo
	db.First(&got, combo.ID)
	if got.Price != 2400 {
		t.Errorf("price = %d, want 2400", got.Price)
	}
	if got.Name != "combo" || got.CategoryID != 3 || got.Description != "orig" {
		t.Errorf("unrelated fields changed: %+v", got)
	}
}

func TestUpdateStatusGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewComboRepository(db)

	combo := entity.Combo{Name: "combo", Status: entity.StatusDisabled}
	if err := db.Create(&combo).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := repo.UpdateStatusGuard(db, combo.ID, entity.StatusDisabled, entity.StatusEnabled)
	if err != nil || n != 1 {
		t.Fatalf("first flip: n=%d err=%v, want 1 row", n, err)
	}

	// stale expectation matches nothing
	n, err = repo.UpdateStatusGuard(db, combo.ID, entity.StatusDisabled, entity.StatusEnabled)
	if err != nil || n != 0 {
		t.Fatalf("stale flip: n=%d err=%v, want 0 rows", n, err)
	}
}

func TestDeleteByIDsNoopOnMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewComboRepository(db)

	if err := repo.DeleteByIDs(db, []uint{42, 43}); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if err := repo.DeleteByIDs(db, nil); err != nil {
		t.Fatalf("delete empty: %v", err)
	}
}
