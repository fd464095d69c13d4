package auth

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"locallens/globals"
	"locallens/middleware"
	"locallens/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

// Admin credentials come from the environment: ADMIN_USER plus a bcrypt
// hash in ADMIN_PASSWORD_HASH. With no hash configured, login is disabled.
func adminCredentials() (string, string) {
	return os.Getenv("ADMIN_USER"), os.Getenv("ADMIN_PASSWORD_HASH")
}

func issueToken(username string, ttl time.Duration) (string, error) {
	claims := &middleware.Claims{
		Username: username,
		UserID:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// POST /api/auth/login
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	adminUser, adminHash := adminCredentials()
	if adminUser == "" || adminHash == "" {
		utils.RespondWithError(w, http.StatusForbidden, "Admin login is not configured")
		return
	}
	if input.Username != adminUser {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokenString, err := issueToken(input.Username, 12*time.Hour)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": tokenString})
}

// POST /api/auth/token/refresh
func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	newToken, err := issueToken(claims.Username, 12*time.Hour)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": newToken})
}
