package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	SessionSecret string
	AIAPIKey      string
	AIEndpoint    string
	AIModel       string
}

// LoadConfig читает переменные окружения, в dev-режиме подгружает .env
func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:    os.Getenv("PORT"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AIAPIKey:      os.Getenv("AIML_API_KEY"),
		AIEndpoint:    os.Getenv("AIML_API_ENDPOINT"),
		AIModel:       os.Getenv("AIML_API_MODEL"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.AIModel == "" {
		cfg.AIModel = "gpt-4"
	}

	return cfg
}
