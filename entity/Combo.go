package entity

import (
	"gorm.io/gorm"
)

type Combo struct {
	gorm.Model
	Name        string `gorm:"size:100;not null" json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`

	// 0 = off sale, 1 = on sale; new combos always start off sale
	Status int `gorm:"not null;default:0" json:"status"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only when the name is needed

	ComboDishes []ComboDish `gorm:"foreignKey:ComboID" json:"-"`
}
