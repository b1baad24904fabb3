package middleware

import (
	"log"
	"net/http"

	"github.com/andrewpaige1/mealbook-api/auth"
	"github.com/andrewpaige1/mealbook-api/config"
	"github.com/andrewpaige1/mealbook-api/models"
	"github.com/andrewpaige1/mealbook-api/utils"
)

// LoadUser reads the auth cookie, verifies it, and attaches the matching
// user to the request context. Requests without a valid cookie pass through
// anonymous; handlers that need a user enforce that with RequireUser.
func LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("auth_token")
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		nickname, err := auth.ParseToken(cookie.Value)
		if err != nil {
			log.Printf("LoadUser: invalid token: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		var user models.User
		if err := config.Database.Where("nickname = ?", nickname).First(&user).Error; err != nil {
			log.Printf("LoadUser: no user for nickname=%s: %v", nickname, err)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), &user)))
	})
}

// RequireUser rejects anonymous requests. Browsable GET requests are sent
// to the login flow instead of erroring.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.CurrentUser(r); !ok {
			if r.Method == http.MethodGet {
				http.Redirect(w, r, "/api/auth/login", http.StatusSeeOther)
				return
			}
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}
}
