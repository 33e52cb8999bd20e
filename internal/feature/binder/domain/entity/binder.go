// Package entity はbinderフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Binder はユーザーが所有する名前付きのカードコレクションです。
type Binder struct {
	// ID is the unique identifier for the binder.
	ID uint `gorm:"primaryKey"`

	// UserID is the owner of the binder. All operations are scoped to the owner.
	UserID uint `gorm:"index;not null"`

	// Name is the display name chosen by the user.
	Name string `gorm:"size:100;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BinderCard はバインダーに収録された1枚のカードです。
// 同じカードを同じバインダーに二重登録することはできません。
type BinderCard struct {
	ID       uint   `gorm:"primaryKey"`
	BinderID uint   `gorm:"uniqueIndex:idx_binder_card;not null"`
	CardID   string `gorm:"uniqueIndex:idx_binder_card;size:50;not null"`

	CreatedAt time.Time
}
