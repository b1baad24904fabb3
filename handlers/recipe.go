package handlers

import (
	"log"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/andrewpaige1/mealbook-api/models"
	"github.com/andrewpaige1/mealbook-api/utils"
)

type DBHandler struct {
	*gorm.DB
}

// recipeSummary is a recipe row annotated for the list view.
type recipeSummary struct {
	models.Recipe
	TimesFavorited     int64 `json:"times_favorited"`
	TotalTimeInMinutes int   `json:"total_time_in_minutes"`
}

// GET /api/recipes
func (db *DBHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.CurrentUser(r)

	var recipes []recipeSummary
	err := db.Model(&models.Recipe{}).
		Scopes(models.VisibleTo(user)).
		Select("recipes.*, " +
			"(SELECT COUNT(DISTINCT user_id) FROM recipe_favorites WHERE recipe_id = recipes.id) AS times_favorited, " +
			"prep_time_in_minutes + cook_time_in_minutes AS total_time_in_minutes").
		Order("title").
		Find(&recipes).Error
	if err != nil {
		log.Printf("ListRecipes: failed to fetch recipes: %v", err)
		http.Error(w, "Failed to fetch recipes", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, recipes)
}

// GET /api/recipes/{recipeID}
//
// No login required; the visibility scope decides what the requester may
// see. Invisible and nonexistent recipes are both a 404.
func (db *DBHandler) GetRecipeByID(w http.ResponseWriter, r *http.Request) {
	recipeID := r.PathValue("recipeID")
	user, _ := utils.CurrentUser(r)

	var recipe models.Recipe
	err := db.Preload("Ingredients").
		Preload("Steps", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Scopes(models.VisibleTo(user)).
		Where("public_id = ?", recipeID).
		First(&recipe).Error
	if err != nil {
		log.Printf("GetRecipeByID: recipe not found for public_id=%s: %v", recipeID, err)
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	var numIngredients int64
	if err := db.Model(&models.Ingredient{}).Where("recipe_id = ?", recipe.ID).Count(&numIngredients).Error; err != nil {
		log.Printf("GetRecipeByID: failed to count ingredients for recipeID=%d: %v", recipe.ID, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	type RecipeResponse struct {
		models.Recipe
		NumIngredients     int64 `json:"num_ingredients"`
		TotalTimeInMinutes int   `json:"total_time_in_minutes"`
	}

	response := RecipeResponse{
		Recipe:             recipe,
		NumIngredients:     numIngredients,
		TotalTimeInMinutes: recipe.PrepTimeInMinutes + recipe.CookTimeInMinutes,
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// POST /api/recipes
func (db *DBHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	form, fieldErrors := parseRecipeForm(r)
	if len(fieldErrors) > 0 {
		log.Printf("CreateRecipe: invalid form from userID=%d: %v", user.ID, fieldErrors)
		utils.RespondWithJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrors})
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		log.Printf("CreateRecipe: failed to generate publicID: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	recipe := models.Recipe{
		PublicID:          publicID,
		Title:             form.Title,
		PrepTimeInMinutes: form.PrepTimeInMinutes,
		CookTimeInMinutes: form.CookTimeInMinutes,
		Public:            form.Public,
		AuthorID:          user.ID,
	}

	if err := db.Create(&recipe).Error; err != nil {
		log.Printf("CreateRecipe: failed to create recipe: %v", err)
		http.Error(w, "Failed to create recipe", http.StatusInternalServerError)
		return
	}

	log.Printf("CreateRecipe: created recipe publicID=%s for userID=%d", publicID, user.ID)
	http.Redirect(w, r, "/api/recipes/"+recipe.PublicID, http.StatusSeeOther)
}

// GET|POST /api/recipes/{recipeID}/copy
//
// The source recipe is deliberately looked up without the visibility scope;
// the copy always belongs to the requester and starts private. Steps are
// not carried over, only ingredients.
func (db *DBHandler) CopyRecipe(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	recipeID := r.PathValue("recipeID")
	var original models.Recipe
	if err := db.Preload("Ingredients").Where("public_id = ?", recipeID).First(&original).Error; err != nil {
		log.Printf("CopyRecipe: source not found for public_id=%s: %v", recipeID, err)
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		log.Printf("CopyRecipe: failed to generate publicID: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	newRecipe := models.Recipe{
		PublicID:          publicID,
		Title:             original.Title,
		PrepTimeInMinutes: original.PrepTimeInMinutes,
		CookTimeInMinutes: original.CookTimeInMinutes,
		Public:            false,
		AuthorID:          user.ID,
		OriginalRecipeID:  &original.ID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newRecipe).Error; err != nil {
			return err
		}
		for _, ingredient := range original.Ingredients {
			copied := models.Ingredient{
				Amount:   ingredient.Amount,
				Item:     ingredient.Item,
				RecipeID: newRecipe.ID,
			}
			if err := tx.Create(&copied).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("CopyRecipe: failed to copy recipeID=%d: %v", original.ID, err)
		http.Error(w, "Failed to copy recipe", http.StatusInternalServerError)
		return
	}

	log.Printf("CopyRecipe: copied recipeID=%d to publicID=%s for userID=%d", original.ID, publicID, user.ID)
	http.Redirect(w, r, "/api/recipes/"+newRecipe.PublicID, http.StatusSeeOther)
}
