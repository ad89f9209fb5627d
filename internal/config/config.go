package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppEnv     string
	ImageDir   string
	JWTSecret  string
	OpsPort    string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),
		ImageDir:   os.Getenv("IMAGE_DIR"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		OpsPort:    os.Getenv("OPS_PORT"),
	}

	if cfg.ImageDir == "" {
		cfg.ImageDir = "data/images"
	}
	if cfg.OpsPort == "" {
		cfg.OpsPort = "9090"
	}

	if cfg.DBHost == "" || cfg.JWTSecret == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
