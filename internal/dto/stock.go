package dto

type StockDTO struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"minQuantity"`
	Low         bool   `json:"low"`
}

type SaveStockRequest struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"minQuantity"`
}
