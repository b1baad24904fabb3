package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/andrewpaige1/mealbook-api/models"
	"github.com/andrewpaige1/mealbook-api/utils"
)

// POST /api/recipes/{recipeID}/ingredients
//
// The recipe is looked up inside the requester's own collection, so a
// recipe owned by someone else answers the same 404 as a missing one.
// Invalid submissions bounce straight back to the detail view with no
// feedback beyond a server-side log line.
func (db *DBHandler) AddIngredient(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recipeID := r.PathValue("recipeID")
	var recipe models.Recipe
	if err := db.Where("public_id = ? AND author_id = ?", recipeID, user.ID).First(&recipe).Error; err != nil {
		log.Printf("AddIngredient: recipe not found for public_id=%s userID=%d: %v", recipeID, user.ID, err)
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	amount := strings.TrimSpace(r.FormValue("amount"))
	item := strings.TrimSpace(r.FormValue("item"))
	if amount == "" || item == "" {
		log.Printf("AddIngredient: discarding invalid form for recipeID=%d", recipe.ID)
		http.Redirect(w, r, "/api/recipes/"+recipe.PublicID, http.StatusSeeOther)
		return
	}

	ingredient := models.Ingredient{
		Amount:   amount,
		Item:     item,
		RecipeID: recipe.ID,
	}
	if err := db.Create(&ingredient).Error; err != nil {
		log.Printf("AddIngredient: failed to create ingredient for recipeID=%d: %v", recipe.ID, err)
		http.Error(w, "Failed to add ingredient", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/api/recipes/"+recipe.PublicID, http.StatusSeeOther)
}
