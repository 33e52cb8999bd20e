package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"card_backend/internal/app/router"
	authadapters "card_backend/internal/feature/auth/adapters"
	authhandler "card_backend/internal/feature/auth/transport/handler"
	authusecase "card_backend/internal/feature/auth/usecase"
	binderadapters "card_backend/internal/feature/binder/adapters"
	binderhandler "card_backend/internal/feature/binder/transport/handler"
	binderusecase "card_backend/internal/feature/binder/usecase"
	catalogadapters "card_backend/internal/feature/catalog/adapters"
	cataloghandler "card_backend/internal/feature/catalog/transport/handler"
	catalogusecase "card_backend/internal/feature/catalog/usecase"
	"card_backend/internal/platform/cache"
	platformdb "card_backend/internal/platform/db"
	jwtmw "card_backend/internal/platform/jwt"
	platformredis "card_backend/internal/platform/redis"
)

func main() {
	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	cardRepo := catalogadapters.NewCardRepository(db)
	binderRepo := binderadapters.NewBinderRepository(db)

	// ルックアップリスト（セット名など）をRedisキャッシュでラップ
	cachedCardRepo := cache.NewCachingLookupRepository(rdb, 5*time.Minute, cardRepo, "catalog")

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(secret, 24*time.Hour))
	catalogUC := catalogusecase.NewCatalogUsecase(cachedCardRepo)
	binderUC := binderusecase.NewBinderUsecase(binderRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	cardH := cataloghandler.NewCardHandler(catalogUC)
	binderH := binderhandler.NewBinderHandler(binderUC)

	// ルータ生成
	router := router.NewRouter(authH, cardH, binderH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
