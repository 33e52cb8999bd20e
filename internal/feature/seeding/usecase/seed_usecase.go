// Package usecase は外部データソースからカードカタログを取り込むビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"card_backend/internal/feature/seeding/domain/entity"
	"card_backend/internal/shared/ratelimiter"
)

const (
	// DefaultBatchSize は1回のリクエストで取得するカード件数です。
	DefaultBatchSize = 250
)

// CardSource はカードデータの取得元を抽象化します（外部API、ローカルのダンプファイル等）。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CardSource interface {
	// FetchPage は1ページ分のカードと、後続ページの有無を返します。pageは1始まりです。
	FetchPage(ctx context.Context, page, pageSize int) (cards []entity.SeedCard, more bool, err error)
}

// SeedRepository はカードとその関連レコードの一括書き込みを抽象化します。
// 同じデータを再投入しても行が重複してはいけません（冪等なupsert）。
type SeedRepository interface {
	UpsertCards(ctx context.Context, cards []entity.SeedCard) error
}

// SeedUsecase は外部ソースからカードを取得し、データベースに永続化するユースケースを定義します。
type SeedUsecase struct {
	source      CardSource
	repo        SeedRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewSeedUsecase は新しい SeedUsecase を作成します。
func NewSeedUsecase(source CardSource, repo SeedRepository, rateLimiter ratelimiter.RateLimiterInterface) *SeedUsecase {
	return &SeedUsecase{source: source, repo: repo, rateLimiter: rateLimiter}
}

// SeedAll は全ページを順に取得してデータベースへ投入します。
// ソースのレートリミットを考慮してリクエスト間に待機を挟みます。
// 取得エラーは以降のページ位置が不明になるため中断しますが、
// 書き込みエラーはログに残して次のバッチへ進みます（テイクの途中失敗で全体を止めない）。
func (su *SeedUsecase) SeedAll(ctx context.Context) error {
	page := 1
	total := 0
	for {
		su.rateLimiter.WaitIfNeeded()

		cards, more, err := su.source.FetchPage(ctx, page, DefaultBatchSize)
		if err != nil {
			return fmt.Errorf("fetch page %d: %w", page, err)
		}

		if len(cards) > 0 {
			if err := su.repo.UpsertCards(ctx, cards); err != nil {
				slog.Error("failed to upsert card batch", "page", page, "cards", len(cards), "error", err)
			} else {
				total += len(cards)
			}
		}

		if !more {
			break
		}
		page++
	}

	slog.Info("seeding finished", "pages", page, "cards", total)
	return nil
}
