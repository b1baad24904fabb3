package models

import "gorm.io/gorm"

// Ingredient is an amount+item line belonging to a recipe. The amount is
// free text ("2 cups", "a pinch"), not a number.
type Ingredient struct {
	gorm.Model
	Amount string `gorm:"not null;size:100"`
	Item   string `gorm:"not null;size:200"`

	RecipeID uint   `gorm:"not null;index"`
	Recipe   Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
