package repository

import (
	"testing"

	"comboapi/entity"
)

func TestDishStatuses(t *testing.T) {
	db := newTestDB(t)
	repo := NewComboDishRepository(db)

	dishes := []entity.Dish{
		{Name: "rice", Status: entity.StatusEnabled},
		{Name: "soup", Status: entity.StatusDisabled},
		{Name: "unlinked", Status: entity.StatusEnabled},
	}
	for i := range dishes {
		if err := db.Create(&dishes[i]).Error; err != nil {
			t.Fatalf("seed dish: %v", err)
		}
	}
	combo := entity.Combo{Name: "combo"}
	if err := db.Create(&combo).Error; err != nil {
		t.Fatalf("seed combo: %v", err)
	}
	links := []entity.ComboDish{
		{ComboID: combo.ID, DishID: dishes[0].ID, Name: "rice", Copies: 1},
		{ComboID: combo.ID, DishID: dishes[1].ID, Name: "soup", Copies: 2},
	}
	if err := repo.InsertBatch(db, links); err != nil {
		t.Fatalf("insert links: %v", err)
	}

	got, err := repo.DishStatuses(db, combo.ID)
	if err != nil {
		t.Fatalf("dish statuses: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want only the 2 linked dishes", len(got))
	}
	statuses := map[string]int{}
	for _, d := range got {
		statuses[d.Name] = d.Status
	}
	if statuses["rice"] != entity.StatusEnabled || statuses["soup"] != entity.StatusDisabled {
		t.Errorf("statuses = %v", statuses)
	}

	// empty result for a combo with no links
	other := entity.Combo{Name: "bare"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err = repo.DishStatuses(db, other.ID)
	if err != nil {
		t.Fatalf("dish statuses: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestDeleteByComboIDsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewComboDishRepository(db)

	combo := entity.Combo{Name: "combo"}
	if err := db.Create(&combo).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := repo.InsertBatch(db, []entity.ComboDish{
		{ComboID: combo.ID, DishID: 1, Name: "rice", Copies: 1},
	}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.DeleteByComboIDs(db, []uint{combo.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteByComboIDs(db, []uint{combo.ID}); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}

	var n int64
	db.Model(&entity.ComboDish{}).Where("combo_id = ?", combo.ID).Count(&n)
	if n != 0 {
		t.Errorf("links left = %d", n)
	}
}

func TestCountByDishIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewComboDishRepository(db)

	combo := entity.Combo{Name: "combo"}
	if err := db.Create(&combo).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := repo.InsertBatch(db, []entity.ComboDish{
		{ComboID: combo.ID, DishID: 7, Name: "rice", Copies: 1},
		{ComboID: combo.ID, DishID: 8, Name: "soup", Copies: 1},
	}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := repo.CountByDishIDs(db, []uint{7})
	if err != nil || n != 1 {
		t.Fatalf("count = %d err = %v, want 1", n, err)
	}
	n, err = repo.CountByDishIDs(db, []uint{99})
	if err != nil || n != 0 {
		t.Fatalf("count = %d err = %v, want 0", n, err)
	}
}
