package services

import (
	"errors"
	"testing"

	"comboapi/entity"
	"comboapi/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newDishService(t *testing.T) (*DishService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewDishService(
		db,
		repository.NewDishRepository(db),
		repository.NewComboDishRepository(db),
		&recordingInvalidator{},
		zap.NewNop().Sugar(),
	)
	return svc, db
}

func TestDishCreateStartsOffSale(t *testing.T) {
	svc, db := newDishService(t)

	id, err := svc.Create(&SaveDishReq{Name: "noodles", CategoryID: 2, Price: 2500})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var dish entity.Dish
	if err := db.First(&dish, id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if dish.Status != entity.StatusDisabled {
		t.Errorf("status = %d, want disabled", dish.Status)
	}
}

func TestDishStartOrStop(t *testing.T) {
	svc, db := newDishService(t)
	id, err := svc.Create(&SaveDishReq{Name: "noodles"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.StartOrStop(entity.StatusEnabled, id); err != nil {
		t.Fatalf("enable: %v", err)
	}
	var dish entity.Dish
	db.First(&dish, id)
	if dish.Status != entity.StatusEnabled {
		t.Errorf("status = %d, want enabled", dish.Status)
	}

	if err := svc.StartOrStop(entity.StatusEnabled, 999); !errors.Is(err, ErrDishNotFound) {
		t.Fatalf("err = %v, want ErrDishNotFound", err)
	}
}

func TestDishDeleteBatchGuards(t *testing.T) {
	svc, db := newDishService(t)

	onSale, err := svc.Create(&SaveDishReq{Name: "on sale"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.StartOrStop(entity.StatusEnabled, onSale); err != nil {
		t.Fatalf("enable: %v", err)
	}

	linked, err := svc.Create(&SaveDishReq{Name: "linked"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	combo := entity.Combo{Name: "combo", Status: entity.StatusDisabled}
	if err := db.Create(&combo).Error; err != nil {
		t.Fatalf("seed combo: %v", err)
	}
	link := entity.ComboDish{ComboID: combo.ID, DishID: linked, Name: "linked", Copies: 1}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("seed link: %v", err)
	}

	free, err := svc.Create(&SaveDishReq{Name: "free"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tests := []struct {
		name       string
		ids        []uint
		wantID     uint
		wantReason string
	}{
		{"on-sale dish blocks", []uint{free, onSale}, onSale, ReasonOnSale},
		{"combo-linked dish blocks", []uint{free, linked}, linked, ReasonLinkedToCombo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.DeleteBatch(tt.ids)
			var del *DeletionNotAllowedError
			if !errors.As(err, &del) {
				t.Fatalf("err = %v, want DeletionNotAllowedError", err)
			}
			if del.ID != tt.wantID || del.Reason != tt.wantReason {
				t.Errorf("error = %+v, want id %d reason %s", del, tt.wantID, tt.wantReason)
			}
			// the deletable dish in the batch survived too
			var n int64
			db.Model(&entity.Dish{}).Where("id = ?", free).Count(&n)
			if n != 1 {
				t.Error("deletable dish was removed despite the batch failing")
			}
		})
	}

	if err := svc.DeleteBatch([]uint{free}); err != nil {
		t.Fatalf("delete free dish: %v", err)
	}
	// missing ids are skipped
	if err := svc.DeleteBatch([]uint{free}); err != nil {
		t.Fatalf("retry delete: %v", err)
	}
}
