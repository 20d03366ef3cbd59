package configs

import (
	"log"

	"comboapi/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the default menu categories.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Set Meals", Sort: 1})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Main Dishes", Sort: 2})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Drinks", Sort: 3})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "Desserts", Sort: 4})

	return nil
}
