package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`

	Status int `gorm:"not null;default:0" json:"status"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	ComboDishes []ComboDish `gorm:"foreignKey:DishID" json:"-"`
}
