package authentication

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"futurepath-backend/config"
	"futurepath-backend/models/users"
)

var JwtKey = []byte(os.Getenv("JWT_SECRET"))

// InitJWT задает ключ подписи токенов из конфигурации. JwtKey читает окружение
// на этапе init, до того как LoadConfig подгрузит .env, поэтому main вызывает
// InitJWT сразу после загрузки конфигурации.
func InitJWT(secret string) {
	JwtKey = []byte(secret)
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.StandardClaims
}

// ValidateToken разбирает Bearer-токен запроса и возвращает личность вызывающего.
// Обработчики зовут его один раз и дальше передают claims явно.
func ValidateToken(r *http.Request) (*Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("authorization header required")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

func generateToken(user users.User) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register: регистрация с паролем и выдачей токена
func Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Проверка на существование пользователя с таким email
	var existingUser users.User
	if err := config.DB.Where("email = ? AND provider = ?", req.Email, "local").First(&existingUser).Error; err == nil {
		respondError(w, http.StatusConflict, "Email already registered")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	user := users.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Provider: "local",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Printf("Ошибка при создании пользователя: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	tokenString, err := generateToken(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	user.AccessToken = tokenString
	config.DB.Save(&user)
	user.AccessToken = ""

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"user":  user,
		"token": tokenString,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login: вход с паролем и генерация JWT
func Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var user users.User
	if err := config.DB.Where("email = ? AND provider = ?", req.Email, "local").First(&user).Error; err != nil {
		respondError(w, http.StatusUnauthorized, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	tokenString, err := generateToken(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	user.AccessToken = tokenString
	if err := config.DB.Save(&user).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error updating user token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": tokenString})
}

// Logout: завершение сеанса
func Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := config.Store.Get(r, "session-name")
	session.Options.MaxAge = -1
	session.Save(r, w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// GetProfile: получение профиля по токену
func GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := ValidateToken(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var user users.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		respondError(w, http.StatusUnauthorized, "User not found")
		return
	}

	var profile users.UserProfile
	var profilePtr *users.UserProfile
	if err := config.DB.Where("user_id = ?", claims.UserID).First(&profile).Error; err == nil {
		profilePtr = &profile
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":    user,
		"profile": profilePtr,
	})
}

// UpdateProfile: создание или обновление анкеты студента
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, err := ValidateToken(r)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input users.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var profile users.UserProfile
	err = config.DB.Where("user_id = ?", claims.UserID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = users.UserProfile{UserID: claims.UserID}
	} else if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	// Обновляем только разрешенные поля
	if input.FullName != "" {
		profile.FullName = input.FullName
	}
	if input.Country != "" {
		profile.Country = input.Country
	}
	if input.EducationLevel != "" {
		profile.EducationLevel = input.EducationLevel
	}
	if input.FieldOfInterest != "" {
		profile.FieldOfInterest = input.FieldOfInterest
	}
	if input.Bio != "" {
		profile.Bio = input.Bio
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}
