package models

import "gorm.io/gorm"

// User represents a user in the system
type User struct {
	gorm.Model
	Nickname     string     `gorm:"unique;not null;size:100"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Recipes      []Recipe   `gorm:"foreignKey:AuthorID"`
	MealPlans    []MealPlan `gorm:"foreignKey:UserID"`
}
