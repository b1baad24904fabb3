package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/andrewpaige1/mealbook-api/models"
)

func TestShowMealPlan(t *testing.T) {
	db := newTestHandler(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	createRecipe(t, db, alice, "Soup", 10, 20, false)
	createRecipe(t, db, bob, "Secret Stew", 5, 5, false)

	show := func(t *testing.T, year, month, day string) map[string]json.RawMessage {
		t.Helper()
		r := asUser(httptest.NewRequest(http.MethodGet, "/api/mealplans/"+year+"/"+month+"/"+day, nil), alice)
		r.SetPathValue("year", year)
		r.SetPathValue("month", month)
		r.SetPathValue("day", day)
		w := httptest.NewRecorder()
		db.ShowMealPlan(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var response map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return response
	}

	t.Run("GetOrCreateIsIdempotent", func(t *testing.T) {
		show(t, "2024", "5", "1")
		show(t, "2024", "5", "1")
		var count int64
		if err := db.Model(&models.MealPlan{}).Where("user_id = ? AND date = ?", alice.ID, "2024-05-01").Count(&count).Error; err != nil {
			t.Fatalf("failed to count plans: %v", err)
		}
		if count != 1 {
			t.Errorf("expected exactly one plan for the date, got %d", count)
		}
	})

	t.Run("AdjacentDates", func(t *testing.T) {
		response := show(t, "2024", "3", "1")
		var prev, next string
		json.Unmarshal(response["prev_day"], &prev)
		json.Unmarshal(response["next_day"], &next)
		if prev != "2024-02-29" {
			t.Errorf("expected prev_day 2024-02-29, got %s", prev)
		}
		if next != "2024-03-02" {
			t.Errorf("expected next_day 2024-03-02, got %s", next)
		}
	})

	t.Run("AddableRecipesAreVisibilityFiltered", func(t *testing.T) {
		response := show(t, "2024", "5", "1")
		var recipesToAdd []models.Recipe
		if err := json.Unmarshal(response["recipes_to_add"], &recipesToAdd); err != nil {
			t.Fatalf("failed to decode recipes_to_add: %v", err)
		}
		if len(recipesToAdd) != 1 || recipesToAdd[0].Title != "Soup" {
			t.Errorf("expected only Soup to be addable, got %v", recipesToAdd)
		}
	})

	t.Run("InvalidDateGets404", func(t *testing.T) {
		r := asUser(httptest.NewRequest(http.MethodGet, "/api/mealplans/2024/2/31", nil), alice)
		r.SetPathValue("year", "2024")
		r.SetPathValue("month", "2")
		r.SetPathValue("day", "31")
		w := httptest.NewRecorder()
		db.ShowMealPlan(w, r)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 for February 31st, got %d", w.Code)
		}
	})
}

func TestToggleMealPlanRecipe(t *testing.T) {
	db := newTestHandler(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	soup := createRecipe(t, db, alice, "Soup", 10, 20, false)
	secret := createRecipe(t, db, bob, "Secret Stew", 5, 5, false)

	toggle := func(t *testing.T, publicID string, background bool) *httptest.ResponseRecorder {
		t.Helper()
		form := url.Values{"date": {"2024-05-01"}, "pk": {publicID}}
		r := asUser(formRequest("/api/mealplans/recipes", form), alice)
		if background {
			r.Header.Set("X-Requested-With", "XMLHttpRequest")
		}
		w := httptest.NewRecorder()
		db.ToggleMealPlanRecipe(w, r)
		return w
	}

	plannedCount := func(t *testing.T) int64 {
		t.Helper()
		var plan models.MealPlan
		if err := db.Where("user_id = ? AND date = ?", alice.ID, "2024-05-01").First(&plan).Error; err != nil {
			t.Fatalf("failed to load plan: %v", err)
		}
		var count int64
		if err := db.Table("meal_plan_recipes").Where("meal_plan_id = ?", plan.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count plan recipes: %v", err)
		}
		return count
	}

	t.Run("FirstToggleAdds", func(t *testing.T) {
		w := toggle(t, soup.PublicID, false)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("expected empty body, got %q", w.Body.String())
		}
		if plannedCount(t) != 1 {
			t.Error("recipe was not added to the plan")
		}
	})

	t.Run("SecondToggleRemoves", func(t *testing.T) {
		w := toggle(t, soup.PublicID, false)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if plannedCount(t) != 0 {
			t.Error("second toggle must remove the recipe again")
		}
	})

	t.Run("BackgroundVariant", func(t *testing.T) {
		w := toggle(t, soup.PublicID, true)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type for background requests, got %q", ct)
		}
		// undo for later subtests
		toggle(t, soup.PublicID, false)
	})

	t.Run("InvisibleRecipeGets404", func(t *testing.T) {
		w := toggle(t, secret.PublicID, false)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 for someone else's private recipe, got %d", w.Code)
		}
	})

	t.Run("BadDateRejected", func(t *testing.T) {
		form := url.Values{"date": {"yesterday"}, "pk": {soup.PublicID}}
		r := asUser(formRequest("/api/mealplans/recipes", form), alice)
		w := httptest.NewRecorder()
		db.ToggleMealPlanRecipe(w, r)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for a malformed date, got %d", w.Code)
		}
	})
}
