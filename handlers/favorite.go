package handlers

import (
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/andrewpaige1/mealbook-api/models"
	"github.com/andrewpaige1/mealbook-api/utils"
)

// POST /api/recipes/{recipeID}/favorite
//
// Toggles a favorite mark on any recipe the requester can see. Responds
// 204 for both the add and the remove branch.
func (db *DBHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recipeID := r.PathValue("recipeID")
	var recipe models.Recipe
	err := db.Scopes(models.VisibleTo(user)).Where("public_id = ?", recipeID).First(&recipe).Error
	if err != nil {
		log.Printf("ToggleFavorite: recipe not found for public_id=%s userID=%d: %v", recipeID, user.ID, err)
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	var favorite models.RecipeFavorite
	err = db.Where("user_id = ? AND recipe_id = ?", user.ID, recipe.ID).First(&favorite).Error
	switch {
	case err == nil:
		if err := db.Delete(&favorite).Error; err != nil {
			log.Printf("ToggleFavorite: failed to remove favorite for recipeID=%d userID=%d: %v", recipe.ID, user.ID, err)
			http.Error(w, "Failed to update favorite", http.StatusInternalServerError)
			return
		}
	case err == gorm.ErrRecordNotFound:
		favorite = models.RecipeFavorite{UserID: user.ID, RecipeID: recipe.ID}
		if err := db.Create(&favorite).Error; err != nil {
			log.Printf("ToggleFavorite: failed to add favorite for recipeID=%d userID=%d: %v", recipe.ID, user.ID, err)
			http.Error(w, "Failed to update favorite", http.StatusInternalServerError)
			return
		}
	default:
		log.Printf("ToggleFavorite: lookup failed for recipeID=%d userID=%d: %v", recipe.ID, user.ID, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
