package dto

type StockItemRequest struct {
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity" binding:"min=0"`
	MinQuantity  float64 `json:"minQuantity" binding:"min=0"`
	CostPrice    float64 `json:"costPrice" binding:"min=0"`
}

type StockMovementRequest struct {
	StockItemID uint    `json:"stockItemId" binding:"required"`
	Type        int     `json:"type" binding:"min=0,max=2"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	Note        string  `json:"note"`
}
