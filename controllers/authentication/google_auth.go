package authentication

import (
	"errors"
	"log"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"futurepath-backend/config"
	"futurepath-backend/models/users"
)

var GoogleOauthConfig = &oauth2.Config{
	RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
	ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
	ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
	Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
	Endpoint:     google.Endpoint,
}

// HandleGoogleLogin initiates Google OAuth login
func HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	state := "google"
	url := GoogleOauthConfig.AuthCodeURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// HandleGoogleCallback processes the OAuth callback and retrieves user info from Google
func HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := "google"
	if r.FormValue("state") != state {
		log.Println("Invalid OAuth state")
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	token, err := GoogleOauthConfig.Exchange(r.Context(), r.FormValue("code"))
	if err != nil {
		log.Printf("Error while exchanging code for token: %s", err.Error())
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	// Запрашиваем данные пользователя через Google OAuth2 API
	svc, err := oauth2api.NewService(r.Context(), option.WithTokenSource(GoogleOauthConfig.TokenSource(r.Context(), token)))
	if err != nil {
		log.Printf("Error creating oauth2 service: %s", err.Error())
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	userInfo, err := svc.Userinfo.Get().Do()
	if err != nil {
		log.Printf("Error while fetching user info: %s", err.Error())
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	// Проверка, существует ли пользователь с таким email
	var user users.User
	if err := config.DB.Where("email = ?", userInfo.Email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Ошибка поиска пользователя: %v", err)
			http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
			return
		}
		// Если пользователь не найден, создаем нового
		log.Printf("Пользователь с email %s не найден, создаем нового", userInfo.Email)
		user = users.User{
			Email:    userInfo.Email,
			Name:     userInfo.GivenName + " " + userInfo.FamilyName,
			Provider: "google",
			Password: "-",
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Printf("Ошибка при создании пользователя: %v", err)
			http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
			return
		}
	}

	googleUser := users.GoogleUser{
		UserID:      user.ID,
		GoogleID:    userInfo.Id,
		Email:       userInfo.Email,
		FirstName:   userInfo.GivenName,
		LastName:    userInfo.FamilyName,
		AccessToken: token.AccessToken,
	}
	if err := config.DB.Where("google_id = ?", userInfo.Id).
		Assign(users.GoogleUser{AccessToken: token.AccessToken, UserID: user.ID}).
		FirstOrCreate(&googleUser).Error; err != nil {
		log.Printf("Ошибка сохранения Google-аккаунта: %v", err)
	}

	// Выдаем собственный JWT и сохраняем сессию
	tokenString, err := generateToken(user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}
	user.AccessToken = tokenString
	config.DB.Save(&user)

	session, _ := config.Store.Get(r, "session-name")
	session.Values["user_id"] = user.ID
	session.Values["name"] = user.Name
	if err := session.Save(r, w); err != nil {
		log.Printf("Ошибка сохранения сессии: %v", err)
	}

	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}
