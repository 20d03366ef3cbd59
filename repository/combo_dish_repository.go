// repository/combo_dish_repository.go
package repository

import (
	"comboapi/entity"

	"gorm.io/gorm"
)

type ComboDishRepository struct {
	DB *gorm.DB
}

func NewComboDishRepository(db *gorm.DB) *ComboDishRepository {
	return &ComboDishRepository{DB: db}
}

// InsertBatch inserts the whole link set in one statement; inside a
// transaction a single failure drops the lot.
func (r *ComboDishRepository) InsertBatch(tx *gorm.DB, links []entity.ComboDish) error {
	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}

func (r *ComboDishRepository) FindByComboID(tx *gorm.DB, comboID uint) ([]entity.ComboDish, error) {
	var links []entity.ComboDish
	err := tx.Where("combo_id = ?", comboID).Order("dish_id").Find(&links).Error
	return links, err
}

func (r *ComboDishRepository) DeleteByComboID(tx *gorm.DB, comboID uint) error {
	return tx.Delete(&entity.ComboDish{}, "combo_id = ?", comboID).Error
}

func (r *ComboDishRepository) DeleteByComboIDs(tx *gorm.DB, comboIDs []uint) error {
	if len(comboIDs) == 0 {
		return nil
	}
	return tx.Delete(&entity.ComboDish{}, "combo_id IN ?", comboIDs).Error
}

// DishStatuses reads the current status of every dish linked to the combo.
// Must run on the enclosing transaction so the enable guard sees committed
// state, not a stale snapshot.
func (r *ComboDishRepository) DishStatuses(tx *gorm.DB, comboID uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := tx.Model(&entity.Dish{}).
		Joins("JOIN combo_dishes cd ON cd.dish_id = dishes.id").
		Where("cd.combo_id = ?", comboID).
		Find(&dishes).Error
	return dishes, err
}

// CountByDishIDs reports how many combo links reference any of the dishes.
func (r *ComboDishRepository) CountByDishIDs(tx *gorm.DB, dishIDs []uint) (int64, error) {
	var n int64
	err := tx.Model(&entity.ComboDish{}).
		Where("dish_id IN ?", dishIDs).
		Count(&n).Error
	return n, err
}
