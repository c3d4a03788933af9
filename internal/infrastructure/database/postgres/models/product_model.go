package models

import "time"

type ProductModel struct {
	ID          uint          `gorm:"primaryKey;autoIncrement"`
	Name        string        `gorm:"type:varchar(255);not null"`
	CategoryID  uint          `gorm:"not null;index"`
	Category    CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Description string        `gorm:"type:text"`
	Price       int           `gorm:"not null"`
	Status      bool          `gorm:"not null;default:true;index"`
	CreatedAt   time.Time     `gorm:"not null"`
	UpdatedAt   time.Time     `gorm:"not null"`
}

func (ProductModel) TableName() string {
	return "products"
}
