// repository/combo_repository.go
package repository

import (
	"comboapi/entity"

	"gorm.io/gorm"
)

type ComboRepository struct {
	DB *gorm.DB
}

func NewComboRepository(db *gorm.DB) *ComboRepository {
	return &ComboRepository{DB: db}
}

// Insert persists a new combo header; the generated id is written back into c.
func (r *ComboRepository) Insert(tx *gorm.DB, c *entity.Combo) error {
	return tx.Create(c).Error
}

func (r *ComboRepository) FindByID(tx *gorm.DB, id uint) (*entity.Combo, error) {
	var c entity.Combo
	if err := tx.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateFields patches only the given header columns. Composition rows are
// never touched here; those are replaced whole by the combo_dish repository.
func (r *ComboRepository) UpdateFields(tx *gorm.DB, id uint, fields map[string]any) error {
	return tx.Model(&entity.Combo{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// UpdateStatusGuard flips status only when the row still holds the expected
// value. RowsAffected == 0 means the row was gone or already past `from`.
func (r *ComboRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to int) (int64, error) {
	res := tx.Model(&entity.Combo{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// DeleteByIDs bulk-removes headers. Missing ids are a no-op.
func (r *ComboRepository) DeleteByIDs(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Unscoped().Delete(&entity.Combo{}, ids).Error
}

// ComboPageFilter is the admin list query: all fields optional.
type ComboPageFilter struct {
	Name       string
	CategoryID uint
	Status     *int
	Page       int // 1-based
	PageSize   int
}

// Page returns one page of combos plus the total over the whole filtered set,
// in creation order.
func (r *ComboRepository) Page(f ComboPageFilter) ([]entity.Combo, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 200 {
		f.PageSize = 10
	}
	offset := (f.Page - 1) * f.PageSize

	q := r.DB.Model(&entity.Combo{})
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

	var items []entity.Combo
	err := q.Order("id").Offset(offset).Limit(f.PageSize).Find(&items).Error
	return items, total, err
}
