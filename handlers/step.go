package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/andrewpaige1/mealbook-api/models"
	"github.com/andrewpaige1/mealbook-api/utils"
)

// ownRecipe fetches a recipe from the requester's own collection. Misses
// answer 404 whether the recipe is foreign or absent.
func (db *DBHandler) ownRecipe(w http.ResponseWriter, r *http.Request, userID uint) (models.Recipe, bool) {
	recipeID := r.PathValue("recipeID")
	var recipe models.Recipe
	if err := db.Where("public_id = ? AND author_id = ?", recipeID, userID).First(&recipe).Error; err != nil {
		log.Printf("ownRecipe: recipe not found for public_id=%s userID=%d: %v", recipeID, userID, err)
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return models.Recipe{}, false
	}
	return recipe, true
}

// GET /api/recipes/{recipeID}/steps
func (db *DBHandler) NewRecipeStep(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recipe, ok := db.ownRecipe(w, r, user.ID)
	if !ok {
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"recipe": recipe.PublicID,
		"form":   map[string]string{"text": ""},
	})
}

// POST /api/recipes/{recipeID}/steps
//
// New steps always append at the end: position max(existing)+1, computed
// inside the same transaction as the insert.
func (db *DBHandler) AddRecipeStep(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recipe, ok := db.ownRecipe(w, r, user.ID)
	if !ok {
		return
	}

	text := strings.TrimSpace(r.FormValue("text"))
	if text == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, map[string]any{
			"errors": map[string]string{"text": "This field is required."},
		})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&models.RecipeStep{}).
			Where("recipe_id = ?", recipe.ID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		step := models.RecipeStep{
			Text:     text,
			Order:    maxOrder + 1,
			RecipeID: recipe.ID,
		}
		return tx.Create(&step).Error
	})
	if err != nil {
		log.Printf("AddRecipeStep: failed to create step for recipeID=%d: %v", recipe.ID, err)
		http.Error(w, "Failed to add step", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/api/recipes/"+recipe.PublicID, http.StatusSeeOther)
}

// POST /api/recipes/{recipeID}/steps/{stepID}/move-up
func (db *DBHandler) MoveStepUp(w http.ResponseWriter, r *http.Request) {
	db.moveStep(w, r, -1)
}

// POST /api/recipes/{recipeID}/steps/{stepID}/move-down
func (db *DBHandler) MoveStepDown(w http.ResponseWriter, r *http.Request) {
	db.moveStep(w, r, +1)
}

// moveStep swaps a step's position with its neighbor in one transaction,
// keeping positions dense and unique per recipe. Moving past either end of
// the list is a no-op.
func (db *DBHandler) moveStep(w http.ResponseWriter, r *http.Request, delta int) {
	user, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recipe, ok := db.ownRecipe(w, r, user.ID)
	if !ok {
		return
	}

	stepID, err := strconv.Atoi(r.PathValue("stepID"))
	if err != nil {
		http.Error(w, "Step not found", http.StatusNotFound)
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var step models.RecipeStep
		if err := tx.Where("id = ? AND recipe_id = ?", stepID, recipe.ID).First(&step).Error; err != nil {
			return err
		}

		var neighbor models.RecipeStep
		err := tx.Where("recipe_id = ? AND position = ?", recipe.ID, step.Order+delta).First(&neighbor).Error
		if err == gorm.ErrRecordNotFound {
			// already first or last
			return nil
		}
		if err != nil {
			return err
		}

		stepOrder, neighborOrder := step.Order, neighbor.Order
		if err := tx.Model(&neighbor).Update("position", stepOrder).Error; err != nil {
			return err
		}
		return tx.Model(&step).Update("position", neighborOrder).Error
	})
	if err == gorm.ErrRecordNotFound {
		http.Error(w, "Step not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("moveStep: failed to reorder stepID=%d for recipeID=%d: %v", stepID, recipe.ID, err)
		http.Error(w, "Failed to reorder step", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/api/recipes/"+recipe.PublicID, http.StatusSeeOther)
}
