package main

import (
	"context"
	"flag"
	"log"
	"time"

	"card_backend/internal/app/di"
	"card_backend/internal/feature/seeding/adapters"
	"card_backend/internal/feature/seeding/usecase"
	platformdb "card_backend/internal/platform/db"
	"card_backend/internal/shared/ratelimiter"
)

func main() {
	// -file を指定するとAPIの代わりにローカルのダンプファイルから投入する
	dumpPath := flag.String("file", "", "path to a local card dump file (JSON). If empty, fetch from the card API")
	rateLimit := flag.Int("rate", 30, "max API requests per minute")
	flag.Parse()

	db := platformdb.OpenDB()

	var source usecase.CardSource
	if *dumpPath != "" {
		source = adapters.NewFileSource(*dumpPath)
	} else {
		source = di.NewCardAPISource()
	}

	repo := adapters.NewSeedRepository(db)
	limiter := ratelimiter.NewRateLimiter(*rateLimit, time.Minute)
	uc := usecase.NewSeedUsecase(source, repo, limiter)

	// フルクロールはページ数が多いため余裕を持たせる
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := uc.SeedAll(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("seed ok")
}
