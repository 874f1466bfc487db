package models

type Category struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"unique;not null" json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Items       []Item `gorm:"foreignKey:CategoryID" json:"items"`
}
