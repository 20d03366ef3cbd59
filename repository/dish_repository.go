// repository/dish_repository.go
package repository

import (
	"comboapi/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) Insert(tx *gorm.DB, d *entity.Dish) error {
	return tx.Create(d).Error
}

func (r *DishRepository) FindByID(tx *gorm.DB, id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := tx.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) FindByCategory(categoryID uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Where("category_id = ?", categoryID).Order("id").Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) UpdateFields(tx *gorm.DB, id uint, fields map[string]any) error {
	return tx.Model(&entity.Dish{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *DishRepository) DeleteByIDs(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Unscoped().Delete(&entity.Dish{}, ids).Error
}

type DishPageFilter struct {
	Name       string
	CategoryID uint
	Status     *int
	Page       int
	PageSize   int
}

func (r *DishRepository) Page(f DishPageFilter) ([]entity.Dish, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 200 {
		f.PageSize = 10
	}
	offset := (f.Page - 1) * f.PageSize

	q := r.DB.Model(&entity.Dish{})
	if f.Name != "" {
		q = q.Where("name LIKE ?", "%"+f.Name+"%")
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.Dish
	err := q.Order("id").Offset(offset).Limit(f.PageSize).Find(&items).Error
	return items, total, err
}
