package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Sort int    `gorm:"not null;default:0" json:"sort"`

	// not serialized on every response
	Combos []Combo `gorm:"foreignKey:CategoryID" json:"-"`
	Dishes []Dish  `gorm:"foreignKey:CategoryID" json:"-"`
}
