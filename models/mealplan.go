package models

import "gorm.io/gorm"

// DateLayout is the calendar-date format used for meal plan dates.
const DateLayout = "2006-01-02"

// MealPlan is a per-user, per-date set of recipe references. At most one
// plan exists per (user, date); plans are created lazily on first access.
type MealPlan struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_date"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Date   string `gorm:"not null;size:10;uniqueIndex:idx_user_date" json:"date"`

	Recipes []Recipe `gorm:"many2many:meal_plan_recipes"`
}
