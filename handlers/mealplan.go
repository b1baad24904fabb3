package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/andrewpaige1/mealbook-api/models"
	"github.com/andrewpaige1/mealbook-api/utils"
)

// planDate resolves the plan date from the optional {year}/{month}/{day}
// path segments, defaulting to today.
func planDate(r *http.Request) (time.Time, error) {
	yearStr := r.PathValue("year")
	if yearStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, err
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil {
		return time.Time{}, err
	}
	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		return time.Time{}, err
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components instead of failing
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, fmt.Errorf("no such date: %04d-%02d-%02d", year, month, day)
	}
	return date, nil
}

// getOrCreatePlan returns the user's meal plan for the given date, creating
// it on first access. Repeated calls for the same (user, date) pair always
// resolve to the same plan; the composite unique index backs that up.
func (db *DBHandler) getOrCreatePlan(userID uint, date string) (models.MealPlan, error) {
	var plan models.MealPlan
	err := db.Where(models.MealPlan{UserID: userID, Date: date}).FirstOrCreate(&plan).Error
	return plan, err
}

// GET /api/mealplans and GET /api/mealplans/{year}/{month}/{day}
func (db *DBHandler) ShowMealPlan(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	date, err := planDate(r)
	if err != nil {
		log.Printf("ShowMealPlan: bad date for userID=%d: %v", user.ID, err)
		http.Error(w, "Invalid date", http.StatusNotFound)
		return
	}
	dateStr := date.Format(models.DateLayout)

	plan, err := db.getOrCreatePlan(user.ID, dateStr)
	if err != nil {
		log.Printf("ShowMealPlan: failed to get or create plan for userID=%d date=%s: %v", user.ID, dateStr, err)
		http.Error(w, "Failed to load meal plan", http.StatusInternalServerError)
		return
	}

	if err := db.Preload("Recipes").First(&plan, plan.ID).Error; err != nil {
		log.Printf("ShowMealPlan: failed to load planID=%d: %v", plan.ID, err)
		http.Error(w, "Failed to load meal plan", http.StatusInternalServerError)
		return
	}

	// every visible recipe not already on the plan
	var recipesToAdd []models.Recipe
	planned := db.Table("meal_plan_recipes").Select("recipe_id").Where("meal_plan_id = ?", plan.ID)
	err = db.Scopes(models.VisibleTo(user)).
		Where("id NOT IN (?)", planned).
		Order("title").
		Find(&recipesToAdd).Error
	if err != nil {
		log.Printf("ShowMealPlan: failed to fetch addable recipes for planID=%d: %v", plan.ID, err)
		http.Error(w, "Failed to load meal plan", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"plan":           plan,
		"recipes_to_add": recipesToAdd,
		"date":           dateStr,
		"prev_day":       date.AddDate(0, 0, -1).Format(models.DateLayout),
		"next_day":       date.AddDate(0, 0, 1).Format(models.DateLayout),
	})
}

// POST /api/mealplans/recipes
//
// Flips a recipe's membership on the plan for the posted date: present
// means remove, absent means add. Both branches answer 204 with no body.
// Background callers mark themselves with X-Requested-With and get the
// JSON content type back.
func (db *DBHandler) ToggleMealPlanRecipe(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	isBackground := r.Header.Get("X-Requested-With") == "XMLHttpRequest"

	dateStr := r.FormValue("date")
	if _, err := time.Parse(models.DateLayout, dateStr); err != nil {
		log.Printf("ToggleMealPlanRecipe: bad date %q from userID=%d: %v", dateStr, user.ID, err)
		http.Error(w, "Invalid date", http.StatusBadRequest)
		return
	}

	recipeID := r.FormValue("pk")
	var recipe models.Recipe
	err := db.Scopes(models.VisibleTo(user)).Where("public_id = ?", recipeID).First(&recipe).Error
	if err != nil {
		log.Printf("ToggleMealPlanRecipe: recipe not found for public_id=%s userID=%d: %v", recipeID, user.ID, err)
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	plan, err := db.getOrCreatePlan(user.ID, dateStr)
	if err != nil {
		log.Printf("ToggleMealPlanRecipe: failed to get or create plan for userID=%d date=%s: %v", user.ID, dateStr, err)
		http.Error(w, "Failed to load meal plan", http.StatusInternalServerError)
		return
	}

	var planned int64
	err = db.Table("meal_plan_recipes").
		Where("meal_plan_id = ? AND recipe_id = ?", plan.ID, recipe.ID).
		Count(&planned).Error
	if err != nil {
		log.Printf("ToggleMealPlanRecipe: membership check failed for planID=%d recipeID=%d: %v", plan.ID, recipe.ID, err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	if planned > 0 {
		err = db.Model(&plan).Association("Recipes").Delete(&recipe)
	} else {
		err = db.Model(&plan).Association("Recipes").Append(&recipe)
	}
	if err != nil {
		log.Printf("ToggleMealPlanRecipe: toggle failed for planID=%d recipeID=%d: %v", plan.ID, recipe.ID, err)
		http.Error(w, "Failed to update meal plan", http.StatusInternalServerError)
		return
	}

	if isBackground {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(http.StatusNoContent)
}
