package tcgapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"card_backend/internal/feature/seeding/adapters/tcgapi/dto"
	"card_backend/internal/feature/seeding/domain/entity"
	"card_backend/internal/feature/seeding/usecase"
)

// Client はカードデータ外部APIからカードを取得するCardSource実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがCardSourceを実装していることをコンパイル時に検証します。
var _ usecase.CardSource = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchPage はカードAPIの1ページ分を取得してドメインエンティティに変換します。
// 後続ページの有無はページ位置とtotalCountから判定します。
func (c *Client) FetchPage(ctx context.Context, page, pageSize int) ([]entity.SeedCard, bool, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	u := fmt.Sprintf("%s/cards?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, err
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("X-Api-Key", c.cfg.APIKey)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, false, fmt.Errorf("card api http %d", res.StatusCode)
	}

	var body dto.CardListResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, false, err
	}

	cards := make([]entity.SeedCard, 0, len(body.Data))
	for _, obj := range body.Data {
		cards = append(cards, obj.ToEntity())
	}

	more := page*pageSize < body.TotalCount
	return cards, more, nil
}
