package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting kitchen confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Accepted by the restaurant
	OrderStatusPreparing OrderStatus = "preparing" // Being cooked
	OrderStatusReady     OrderStatus = "ready"     // Ready for pickup/delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the order
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before preparation
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderRef      string      `gorm:"uniqueIndex" json:"orderRef"`
	UserID        uint        `gorm:"not null" json:"userId"`
	User          User        `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"` // e.g. "card", "cash"
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// OrderItem copies the catalog price at order time so historical orders
// are immune to later menu price changes.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index" json:"orderId"`
	ItemID   uint    `gorm:"not null" json:"itemId"`
	Item     Item    `gorm:"foreignKey:ItemID" json:"item"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
}
