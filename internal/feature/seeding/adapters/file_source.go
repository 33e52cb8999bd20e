package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"card_backend/internal/feature/seeding/adapters/tcgapi/dto"
	"card_backend/internal/feature/seeding/domain/entity"
	"card_backend/internal/feature/seeding/usecase"
)

// FileSource はローカルのJSONダンプファイル（`{"data":[...]}`、外部APIと同じ形）から
// カードを読み込むCardSource実装です。初回アクセス時に全件を読み込み、ページ単位で返します。
type FileSource struct {
	path  string
	cards []entity.SeedCard
}

var _ usecase.CardSource = (*FileSource)(nil)

// NewFileSource は指定されたダンプファイルを読むFileSourceを生成します。
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchPage はダンプ内のカードを1ページ分返します。pageは1始まりです。
func (f *FileSource) FetchPage(ctx context.Context, page, pageSize int) ([]entity.SeedCard, bool, error) {
	if f.cards == nil {
		if err := f.load(); err != nil {
			return nil, false, err
		}
	}

	start := (page - 1) * pageSize
	if start >= len(f.cards) {
		return []entity.SeedCard{}, false, nil
	}
	end := start + pageSize
	if end > len(f.cards) {
		end = len(f.cards)
	}
	return f.cards[start:end], end < len(f.cards), nil
}

// load はダンプファイル全体をメモリに読み込みます。
func (f *FileSource) load() error {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("read dump file %s: %w", f.path, err)
	}

	var doc dto.CardListResponse
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse dump file %s: %w", f.path, err)
	}

	cards := make([]entity.SeedCard, 0, len(doc.Data))
	for _, obj := range doc.Data {
		cards = append(cards, obj.ToEntity())
	}
	f.cards = cards
	return nil
}
