package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string
	DatabaseURL  string
	RedisAddr    string
	JWTSecret    string
	BucketName   string
	BucketRegion string
	AccessKey    string
	SecretKey    string
	SignedURLTTL time.Duration
}

// Load reads configuration from environment variables with defaults applied.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("JWT_SECRET", "super-secret-key") // move to env in prod
	v.SetDefault("BUCKET_REGION", "us-east-1")
	v.SetDefault("SIGNED_URL_TTL", "1h")

	return Config{
		Port:         v.GetString("PORT"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		RedisAddr:    v.GetString("REDIS_ADDR"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		BucketName:   v.GetString("BUCKET_NAME"),
		BucketRegion: v.GetString("BUCKET_REGION"),
		AccessKey:    v.GetString("ACCESS_KEY"),
		SecretKey:    v.GetString("SECRET_ACCESS_KEY"),
		SignedURLTTL: v.GetDuration("SIGNED_URL_TTL"),
	}
}
