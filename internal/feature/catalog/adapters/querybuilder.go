package adapters

import (
	"strings"

	"gorm.io/gorm"

	"card_backend/internal/feature/catalog/usecase"
)

// predicate はWHERE句の条件1つ分です。引数は必ずバインドパラメータとして渡します。
type predicate struct {
	expr string
	arg  any
}

// cardPredicates はフィルタを述語の順序付きリストに変換します。
// 空のフィールドは述語を生成しません（絞り込みは常に狭める方向にのみ働きます）。
// データクエリと件数クエリの両方がこの1つのリストを共有するため、両者の条件は乖離しません。
func cardPredicates(f usecase.CardFilter) []predicate {
	var ps []predicate
	if f.Search != "" {
		ps = append(ps, predicate{
			expr: "LOWER(c.name) LIKE ?",
			arg:  "%" + strings.ToLower(f.Search) + "%",
		})
	}
	if f.Rarity != "" {
		ps = append(ps, predicate{expr: "c.rarity = ?", arg: f.Rarity})
	}
	if f.SetName != "" {
		ps = append(ps, predicate{expr: "s.name = ?", arg: f.SetName})
	}
	if f.Supertype != "" {
		ps = append(ps, predicate{expr: "c.supertype = ?", arg: f.Supertype})
	}
	return ps
}

// applyPredicates は述語リストをクエリにAND結合で適用します。
func applyPredicates(q *gorm.DB, ps []predicate) *gorm.DB {
	for _, p := range ps {
		q = q.Where(p.expr, p.arg)
	}
	return q
}
