package main

import (
	"encoding/json"
	"log"
	"net/http"

	"futurepath-backend/config"
	"futurepath-backend/controllers/authentication"
	"futurepath-backend/controllers/chat"
	"futurepath-backend/controllers/dashboard"
	"futurepath-backend/controllers/httpCors"
	"futurepath-backend/controllers/scholarships"
	dashboardmodels "futurepath-backend/models/dashboard"
	"futurepath-backend/models/users"
	"futurepath-backend/services"
)

func main() {
	cfg := config.LoadConfig()
	authentication.InitJWT(cfg.JWTSecret)
	config.InitSessionStore(cfg)

	// Инициализируем базу данных
	if err := config.InitDB(cfg); err != nil {
		log.Fatalf("Ошибка инициализации базы данных: %v", err)
	}

	// Выполняем миграцию базы данных
	err := config.DB.AutoMigrate(
		&users.User{},
		&users.GoogleUser{},
		&users.UserProfile{},
		&dashboardmodels.FavoriteScholarship{},
		&dashboardmodels.CareerGoal{},
	)
	if err != nil {
		log.Fatalf("Ошибка миграции базы данных: %v", err)
	}

	// Проверка подключения к базе данных
	sqlDB, err := config.DB.DB()
	if err != nil {
		log.Fatalf("Ошибка получения подключения к базе данных: %v", err)
	}
	if err = sqlDB.Ping(); err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	log.Println("Подключение к базе данных успешно")

	favoriteStore := dashboardmodels.FavoriteStore{DB: config.DB}
	goalStore := dashboardmodels.GoalStore{DB: config.DB}
	chatClient := services.NewChatClient(cfg.AIEndpoint, cfg.AIAPIKey, cfg.AIModel)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleHome)

	mux.HandleFunc("/login/google", authentication.HandleGoogleLogin)
	mux.HandleFunc("/callback/google", authentication.HandleGoogleCallback)

	mux.HandleFunc("/api/register", authentication.Register)
	mux.HandleFunc("/api/login", authentication.Login)
	mux.HandleFunc("/api/logout", authentication.Logout)
	mux.HandleFunc("/api/profile", authentication.GetProfile)
	mux.HandleFunc("/api/profile/update", authentication.UpdateProfile)

	mux.HandleFunc("/api/scholarships", scholarships.ListScholarships)

	mux.HandleFunc("/api/dashboard/add-favorite", func(w http.ResponseWriter, r *http.Request) {
		dashboard.AddFavorite(w, r, favoriteStore)
	})
	mux.HandleFunc("/api/dashboard/remove-favorite", func(w http.ResponseWriter, r *http.Request) {
		dashboard.RemoveFavorite(w, r, favoriteStore)
	})
	mux.HandleFunc("/api/dashboard/create-career-goal", func(w http.ResponseWriter, r *http.Request) {
		dashboard.CreateCareerGoal(w, r, goalStore)
	})
	mux.HandleFunc("/api/dashboard/update-career-goal", func(w http.ResponseWriter, r *http.Request) {
		dashboard.UpdateCareerGoal(w, r, goalStore)
	})
	mux.HandleFunc("/api/dashboard/get-user-data", func(w http.ResponseWriter, r *http.Request) {
		dashboard.GetUserData(w, r, config.DB)
	})

	mux.HandleFunc("/integrations/chat-gpt/conversationgpt4", func(w http.ResponseWriter, r *http.Request) {
		chat.Converse(w, r, chatClient)
	})

	handler := httpCors.CorsSettings().Handler(mux)

	// Запускаем сервер
	log.Printf("Сервер запущен на порту %s", cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, handler); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	session, _ := config.Store.Get(r, "session-name")

	w.Header().Set("Content-Type", "application/json")
	if name, ok := session.Values["name"].(string); ok {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":       "Добро пожаловать, " + name + "!",
			"authenticated": true,
		})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":       "FuturePathAI API",
		"authenticated": false,
	})
}
