package entity

// Sale status shared by Combo and Dish.
const (
	StatusDisabled = 0
	StatusEnabled  = 1
)
