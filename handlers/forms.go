package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

type recipeForm struct {
	Title             string
	PrepTimeInMinutes int
	CookTimeInMinutes int
	Public            bool
}

// parseRecipeForm reads a recipe submission and returns field-level errors
// for anything that failed validation. Both time fields must be whole
// non-negative minutes; public is optional and defaults to false.
func parseRecipeForm(r *http.Request) (recipeForm, map[string]string) {
	fieldErrors := map[string]string{}
	var form recipeForm

	form.Title = strings.TrimSpace(r.FormValue("title"))
	if form.Title == "" {
		fieldErrors["title"] = "This field is required."
	}

	form.PrepTimeInMinutes = parseMinutes(r.FormValue("prep_time_in_minutes"), "prep_time_in_minutes", fieldErrors)
	form.CookTimeInMinutes = parseMinutes(r.FormValue("cook_time_in_minutes"), "cook_time_in_minutes", fieldErrors)

	public := r.FormValue("public")
	form.Public = public == "on" || public == "true"

	return form, fieldErrors
}

func parseMinutes(value, field string, fieldErrors map[string]string) int {
	if strings.TrimSpace(value) == "" {
		fieldErrors[field] = "This field is required."
		return 0
	}
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes < 0 {
		fieldErrors[field] = "Enter a whole number of minutes, zero or greater."
		return 0
	}
	return minutes
}
