package models

import "time"

type Supplier struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurantId" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"not null"`
	TaxID        string    `json:"taxId"`
	PhoneNumber  string    `json:"phoneNumber"`
	Email        string    `json:"email"`
	Category     string    `json:"category"`
	Status       int       `json:"status" gorm:"default:1"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type SupplierPayment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	SupplierID    uint      `json:"supplierId" gorm:"index;not null"`
	Supplier      Supplier  `json:"supplier" gorm:"foreignKey:SupplierID"`
	RestaurantID  uint      `json:"restaurantId" gorm:"index;not null"`
	Amount        float64   `json:"amount" gorm:"not null"`
	Description   string    `json:"description"`
	InvoiceNumber string    `json:"invoiceNumber"`
	PaymentDate   time.Time `json:"paymentDate"`
	Method        int       `json:"method"`
	Paid          bool      `json:"paid" gorm:"default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
