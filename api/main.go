package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/rogerio-castellano/product-catalog/internal/blob"
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/http/router"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// @title Product Catalog API
// @version 1.0
// @description REST API for registering products with images and dimensional metadata.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	auth.SetSecret(cfg.JWTSecret)

	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("could not connect to database:", err)
	}
	defer database.Close()

	ctx := context.Background()
	s3Client, err := blob.NewS3Client(ctx, cfg.BucketRegion, cfg.AccessKey, cfg.SecretKey)
	if err != nil {
		log.Fatal("could not configure blob storage:", err)
	}

	products := repo.NewPostgresProductRepository(database)
	users := repo.NewPostgresUserRepository(database)
	contacts := repo.NewPostgresContactRepository(database)

	svc := catalog.NewService(products, users, blob.NewS3Store(s3Client, cfg.BucketName))
	svc.SetSignedURLTTL(cfg.SignedURLTTL)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		svc.SetURLCache(catalog.NewRedisURLCache(rdb))
	}

	handlers.SetCatalog(svc)
	handlers.SetUserRepo(users)
	handlers.SetContactRepo(contacts)

	r := router.NewRouter()
	log.Println("server running on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
