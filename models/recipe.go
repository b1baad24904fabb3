package models

import "gorm.io/gorm"

// Recipe represents a dish definition with timing metadata.
// A recipe is visible to a user iff that user is the author or the recipe
// is public.
type Recipe struct {
	gorm.Model
	PublicID          string `gorm:"size:100;uniqueIndex"`
	Title             string `gorm:"not null;size:200"`
	PrepTimeInMinutes int    `gorm:"not null" json:"prep_time_in_minutes"`
	CookTimeInMinutes int    `gorm:"not null" json:"cook_time_in_minutes"`
	Public            bool   `gorm:"default:false"`

	AuthorID uint `gorm:"not null;index"`
	User     User `gorm:"foreignKey:AuthorID" json:"-"`

	// Set when the recipe was created by copying another recipe.
	OriginalRecipeID *uint   `gorm:"default:null" json:"original_recipe_id,omitempty"`
	OriginalRecipe   *Recipe `gorm:"foreignKey:OriginalRecipeID" json:"-"`

	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Steps       []RecipeStep `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// VisibleTo scopes a recipe query to what the given user may read: their own
// recipes plus anyone's public ones. A nil user sees only public recipes.
func VisibleTo(user *User) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if user == nil {
			return db.Where("public = ?", true)
		}
		return db.Where("author_id = ? OR public = ?", user.ID, true)
	}
}
