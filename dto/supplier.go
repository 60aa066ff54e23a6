package dto

type SupplierRequest struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	TaxID        string `json:"taxId"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email" binding:"omitempty,email"`
	Category     string `json:"category"`
}

type SupplierPaymentRequest struct {
	SupplierID    uint    `json:"supplierId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Description   string  `json:"description"`
	InvoiceNumber string  `json:"invoiceNumber"`
	PaymentDate   string  `json:"paymentDate"` // "2006-01-02", defaults to today
	Method        int     `json:"method"`
}
