package main

import (
	"log"
	"net/http"
	"os"

	"github.com/andrewpaige1/mealbook-api/config"
	"github.com/andrewpaige1/mealbook-api/handlers"
	"github.com/andrewpaige1/mealbook-api/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	// Initialize database connection
	config.Connect()

	DBHandler := &handlers.DBHandler{DB: config.Database}
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/signup", DBHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", DBHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", DBHandler.Logout)

	// Recipes
	mux.HandleFunc("GET /api/recipes", middleware.RequireUser(DBHandler.ListRecipes))
	mux.HandleFunc("POST /api/recipes", middleware.RequireUser(DBHandler.CreateRecipe))
	mux.HandleFunc("GET /api/recipes/{recipeID}", DBHandler.GetRecipeByID)
	mux.HandleFunc("GET /api/recipes/{recipeID}/copy", middleware.RequireUser(DBHandler.CopyRecipe))
	mux.HandleFunc("POST /api/recipes/{recipeID}/copy", middleware.RequireUser(DBHandler.CopyRecipe))
	mux.HandleFunc("POST /api/recipes/{recipeID}/favorite", middleware.RequireUser(DBHandler.ToggleFavorite))

	// Ingredients and steps
	mux.HandleFunc("POST /api/recipes/{recipeID}/ingredients", middleware.RequireUser(DBHandler.AddIngredient))
	mux.HandleFunc("GET /api/recipes/{recipeID}/steps", middleware.RequireUser(DBHandler.NewRecipeStep))
	mux.HandleFunc("POST /api/recipes/{recipeID}/steps", middleware.RequireUser(DBHandler.AddRecipeStep))
	mux.HandleFunc("POST /api/recipes/{recipeID}/steps/{stepID}/move-up", middleware.RequireUser(DBHandler.MoveStepUp))
	mux.HandleFunc("POST /api/recipes/{recipeID}/steps/{stepID}/move-down", middleware.RequireUser(DBHandler.MoveStepDown))

	// Meal plans
	mux.HandleFunc("GET /api/mealplans", middleware.RequireUser(DBHandler.ShowMealPlan))
	mux.HandleFunc("GET /api/mealplans/{year}/{month}/{day}", middleware.RequireUser(DBHandler.ShowMealPlan))
	mux.HandleFunc("POST /api/mealplans/recipes", middleware.RequireUser(DBHandler.ToggleMealPlanRecipe))

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.LoadUser(mux))

	// Server configuration

	serverAddr := "0.0.0.0:" + config.Env.Port

	http.ListenAndServe(serverAddr, corsHandler)
}
