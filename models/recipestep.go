package models

import "gorm.io/gorm"

// RecipeStep is an ordered instruction line belonging to a recipe.
// Position values are dense and unique per recipe, starting at 1; the
// handlers keep that invariant when appending and reordering.
type RecipeStep struct {
	gorm.Model
	Text  string `gorm:"not null;size:1000"`
	Order int    `gorm:"column:position;not null;index" json:"order"`

	RecipeID uint   `gorm:"not null;index"`
	Recipe   Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
