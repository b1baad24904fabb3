package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/andrewpaige1/mealbook-api/auth"
	"github.com/andrewpaige1/mealbook-api/config"
	"github.com/andrewpaige1/mealbook-api/models"
	"github.com/andrewpaige1/mealbook-api/utils"
)

type credentials struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		Domain:   config.Env.Domain,
		HttpOnly: true,
		Secure:   config.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})
}

// POST /api/auth/signup
func (db *DBHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if creds.Nickname == "" || creds.Password == "" {
		http.Error(w, "Nickname and password are required", http.StatusBadRequest)
		return
	}

	var existing models.User
	if err := db.Where("nickname = ?", creds.Nickname).First(&existing).Error; err == nil {
		http.Error(w, "Nickname already taken", http.StatusConflict)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Signup: failed to hash password: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Nickname:     creds.Nickname,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Signup: failed to create user: %v", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	token, err := auth.CreateToken(user.Nickname)
	if err != nil {
		log.Printf("Signup: failed to generate token: %v", err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	setAuthCookie(w, token)

	log.Printf("Signup: created user %s", user.Nickname)
	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"user": user})
}

// POST /api/auth/login
func (db *DBHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var user models.User
	if err := db.Where("nickname = ?", creds.Nickname).First(&user).Error; err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.CreateToken(user.Nickname)
	if err != nil {
		log.Printf("Login: failed to generate token for %s: %v", user.Nickname, err)
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	setAuthCookie(w, token)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"user": user})
}

// POST /api/auth/logout
func (db *DBHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		Domain:   config.Env.Domain,
		HttpOnly: true,
		Secure:   config.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}
