package entity

// ComboDish is the combo_dishes join row. Name and Price are snapshots of the
// dish at composition time; the set is always replaced whole, never patched.
type ComboDish struct {
	ComboID uint   `gorm:"primaryKey" json:"comboId"`
	DishID  uint   `gorm:"primaryKey" json:"dishId"`
	Name    string `json:"name"`
	Price   int64  `json:"price"`
	Copies  int    `gorm:"not null;default:1" json:"copies"`
}
