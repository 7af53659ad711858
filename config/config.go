package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Config struct {
	MongoClient *mongo.Client
	DBName      string
	JWTSecret   string
	Port        string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryPreset    string
	CloudinaryFolder    string

	Logger *zap.Logger
}

// Load reads the environment (optionally from a .env file), connects
// to MongoDB, and returns the shared configuration.
func Load(logger *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found, using system environment variables")
	}

	cfg := &Config{
		DBName:              getEnv("MONGO_DB", "volunteerease"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		Port:                getEnv("PORT", "8080"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryPreset:    getEnv("CLOUDINARY_UPLOAD_PRESET", "volunteerease"),
		CloudinaryFolder:    getEnv("CLOUDINARY_UPLOAD_FOLDER", "events"),
		Logger:              logger,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is missing")
	}

	uri := getEnv("MONGO_URI", "mongodb://localhost:27017")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("could not connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("could not ping mongo: %w", err)
	}

	cfg.MongoClient = client
	logger.Info("connected to mongo", zap.String("db", cfg.DBName))
	return cfg, nil
}

// DB returns the application database handle.
func (c *Config) DB() *mongo.Database {
	return c.MongoClient.Database(c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
