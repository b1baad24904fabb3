package models

import "time"

// RecipeFavorite marks a recipe as favorited by a user. One row per
// (user, recipe) pair; favoriting is a toggle, so rows are hard-deleted.
type RecipeFavorite struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_recipe"`
	RecipeID  uint      `gorm:"not null;index;uniqueIndex:idx_user_recipe"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
