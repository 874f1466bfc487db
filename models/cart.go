package models

import "time"

// CartItem is one line of a session's cart. The unique index on
// (session_id, item_id) guarantees at most one row per pair and is the
// conflict target for the add-to-cart upsert.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"not null;uniqueIndex:idx_cart_session_item" json:"sessionId"`
	ItemID    uint      `gorm:"not null;uniqueIndex:idx_cart_session_item" json:"itemId"`
	Item      Item      `gorm:"foreignKey:ItemID" json:"item"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}
