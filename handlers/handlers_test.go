package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/andrewpaige1/mealbook-api/config"
	"github.com/andrewpaige1/mealbook-api/models"
	"github.com/andrewpaige1/mealbook-api/utils"
)

func newTestHandler(t *testing.T) *DBHandler {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return &DBHandler{DB: db}
}

func createUser(t *testing.T, db *DBHandler, nickname string) *models.User {
	t.Helper()
	user := models.User{Nickname: nickname, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", nickname, err)
	}
	return &user
}

func createRecipe(t *testing.T, db *DBHandler, author *models.User, title string, prep, cook int, public bool) models.Recipe {
	t.Helper()
	publicID, err := gonanoid.New()
	if err != nil {
		t.Fatalf("failed to generate public id: %v", err)
	}
	recipe := models.Recipe{
		PublicID:          publicID,
		Title:             title,
		PrepTimeInMinutes: prep,
		CookTimeInMinutes: cook,
		Public:            public,
		AuthorID:          author.ID,
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to create recipe %s: %v", title, err)
	}
	return recipe
}

// asUser attaches the user to the request context the way the auth
// middleware would.
func asUser(r *http.Request, user *models.User) *http.Request {
	if user == nil {
		return r
	}
	return r.WithContext(utils.WithUser(r.Context(), user))
}

func formRequest(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}
